package storage

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/AbsaOSS/libvcx/agent/vcxerr"
	"github.com/hyperledger/aries-framework-go/spi/storage"
	"github.com/lainio/err2"
	"github.com/lainio/err2/assert"
	"github.com/lainio/err2/try"
)

const (
	dbPath    = "storage_test.bolt"
	dbPathKey = "storage_key_test.bolt"
	testKey   = "15308490f1e4026284594dd08d31291bc8ef2aeac730d0daf6ff87bb92d4336c"
)

var (
	plain     *Provider
	encrypted *Provider
)

func TestMain(m *testing.M) {
	setUp()
	code := m.Run()
	tearDown()
	os.Exit(code)
}

func setUp() {
	defer err2.Catch(err2.Err(func(err error) {
		fmt.Println("error on setup", err)
	}))

	// We don't want logs on file with tests
	try.To(flag.Set("logtostderr", "true"))

	plain = try.To1(Open(Cfg{Filename: dbPath}))
	encrypted = try.To1(Open(Cfg{Filename: dbPathKey, Key: testKey}))
}

func tearDown() {
	_ = plain.Close()
	_ = encrypted.Close()

	os.Remove(dbPath)
	os.Remove(dbPathKey)
	os.Remove(dbPath + "_backup")
}

func TestStore_PutGet(t *testing.T) {
	tests := []struct {
		name string
		p    *Provider
	}{
		{"plain", plain},
		{"encrypted", encrypted},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.PushTester(t)
			defer assert.PopTester()

			s, err := tt.p.OpenStore(Connection)
			assert.NoError(err)

			assert.NoError(s.Put("conn1", []byte("value1")))
			got, err := s.Get("conn1")
			assert.NoError(err)
			assert.DeepEqual(got, []byte("value1"))

			assert.NoError(s.Delete("conn1"))
			_, err = s.Get("conn1")
			assert.That(errors.Is(err, storage.ErrDataNotFound))
		})
	}
}

func TestStore_Batch(t *testing.T) {
	assert.PushTester(t)
	defer assert.PopTester()

	s, err := encrypted.Store(Issuer)
	assert.NoError(err)

	assert.NoError(s.Batch([]storage.Operation{
		{Key: "a", Value: []byte("1")},
		{Key: "b", Value: []byte("2")},
		{Key: "c", Value: []byte("3")},
		{Key: "b"},
	}))
	values, err := s.GetBulk("a", "b", "c")
	assert.NoError(err)
	assert.DeepEqual(values, [][]byte{[]byte("1"), nil, []byte("3")})

	all, err := s.GetAll()
	assert.NoError(err)
	assert.Equal(len(all), 2)
}

func TestStore_Tags(t *testing.T) {
	assert.PushTester(t)
	defer assert.PopTester()

	s, err := plain.OpenStore(Holder)
	assert.NoError(err)
	assert.Error(s.Put("k", []byte("v"), storage.Tag{Name: "t"}))

	_, err = plain.OpenStore("unknown")
	assert.Error(err)
	assert.Equal(len(plain.GetOpenStores()), len(Buckets))
}

func TestProvider_Backup(t *testing.T) {
	assert.PushTester(t)
	defer assert.PopTester()

	s, err := plain.OpenStore(Wallet)
	assert.NoError(err)
	assert.NoError(s.Put("key", []byte("backed up")))

	name, err := plain.Backup()
	assert.NoError(err)
	assert.Equal(name, dbPath+"_backup")

	backup, err := Open(Cfg{Filename: name, BackupName: name + "_2"})
	assert.NoError(err)
	defer backup.Close()

	bs, err := backup.OpenStore(Wallet)
	assert.NoError(err)
	got, err := bs.Get("key")
	assert.NoError(err)
	assert.DeepEqual(got, []byte("backed up"))
}

func TestProvider_BackupClosed(t *testing.T) {
	assert.PushTester(t)
	defer assert.PopTester()

	name := filepath.Join(t.TempDir(), "closed.bolt")
	p, err := Open(Cfg{Filename: name, BackupName: name + "_backup"})
	assert.NoError(err)
	assert.NoError(p.Close())

	_, err = p.Backup()
	assert.That(vcxerr.IsKind(err, vcxerr.IOError))
}

func TestOpen_NoFilename(t *testing.T) {
	assert.PushTester(t)
	defer assert.PopTester()

	_, err := Open(Cfg{})
	assert.Error(err)
}
