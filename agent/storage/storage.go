/*
Package storage is the persistent key value store of the module. It keeps one
bbolt bucket per store, e.g. the wallet keys and the serialized protocol
objects, and offers them through the Aries storage provider interface.

When the Cfg.Key is set, keys are hashed and values encrypted before they are
written to the file.
*/
package storage

import (
	"crypto/md5"
	"encoding/hex"
	"errors"
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/AbsaOSS/libvcx/agent/vcxerr"
	"github.com/findy-network/findy-common-go/crypto"
	"github.com/go-co-op/gocron"
	"github.com/golang/glog"
	"github.com/hyperledger/aries-framework-go/spi/storage"
	"github.com/lainio/err2"
	"github.com/lainio/err2/try"
	bolt "go.etcd.io/bbolt"
)

// Store names used by the module.
const (
	Wallet     = "wallet"
	Connection = "connection"
	Issuer     = "issuer"
	Holder     = "holder"
	Prover     = "prover"
	Verifier   = "verifier"
)

// Buckets are the default stores.
var Buckets = []string{Wallet, Connection, Issuer, Holder, Prover, Verifier}

var errNotOpen = errors.New("storage not open")

// Cfg is the storage configuration.
type Cfg struct {
	Filename   string
	Key        string // hex encoded master key, empty for plain storage
	Buckets    []string
	BackupName string
}

// Provider implements the Aries storage provider on top of one bbolt file.
type Provider struct {
	l sync.RWMutex

	cfg    Cfg
	db     *bolt.DB
	cipher *crypto.Cipher
	stores map[string]*Store
	cron   *gocron.Scheduler
}

var _ storage.Provider = (*Provider)(nil)

// Open opens or creates the database file and its buckets.
func Open(cfg Cfg) (p *Provider, err error) {
	defer err2.Handle(&err, "storage open")

	if cfg.Filename == "" {
		return nil, vcxerr.New(vcxerr.InvalidOption, "storage file name cannot be empty")
	}
	if len(cfg.Buckets) == 0 {
		cfg.Buckets = Buckets
	}
	if cfg.BackupName == "" {
		cfg.BackupName = cfg.Filename + "_backup"
	}
	p = &Provider{
		cfg:    cfg,
		stores: make(map[string]*Store, len(cfg.Buckets)),
	}
	if cfg.Key != "" {
		k := try.To1(hex.DecodeString(cfg.Key))
		p.cipher = crypto.NewCipher(k)
	}

	p.db = try.To1(bolt.Open(cfg.Filename, 0600, &bolt.Options{Timeout: time.Second}))
	try.To(p.db.Update(func(tx *bolt.Tx) (err error) {
		defer err2.Handle(&err, "create buckets")

		for _, name := range cfg.Buckets {
			try.To1(tx.CreateBucketIfNotExists([]byte(name)))
		}
		return nil
	}))
	for _, name := range cfg.Buckets {
		p.stores[name] = &Store{name: name, owner: p}
	}
	glog.V(3).Infoln("storage opened:", cfg.Filename)
	return p, nil
}

// OpenStore returns the store of the bucket name.
func (p *Provider) OpenStore(name string) (storage.Store, error) {
	glog.V(7).Infoln("Provider::OpenStore", name)

	if s, ok := p.stores[name]; ok {
		return s, nil
	}
	return nil, fmt.Errorf("store %s not found", name)
}

// Store returns our own store type which has GetAll in addition.
func (p *Provider) Store(name string) (*Store, error) {
	if s, ok := p.stores[name]; ok {
		return s, nil
	}
	return nil, fmt.Errorf("store %s not found", name)
}

// SetStoreConfig accepts only configurations without tags.
func (p *Provider) SetStoreConfig(name string, config storage.StoreConfiguration) error {
	if _, ok := p.stores[name]; !ok {
		return storage.ErrStoreNotFound
	}
	if len(config.TagNames) > 0 {
		return errTagsNotSupported
	}
	return nil
}

func (p *Provider) GetStoreConfig(name string) (storage.StoreConfiguration, error) {
	if _, ok := p.stores[name]; !ok {
		return storage.StoreConfiguration{}, storage.ErrStoreNotFound
	}
	return storage.StoreConfiguration{}, nil
}

func (p *Provider) GetOpenStores() []storage.Store {
	stores := make([]storage.Store, 0, len(p.stores))
	for _, name := range p.cfg.Buckets {
		stores = append(stores, p.stores[name])
	}
	return stores
}

// Close stops the backups and closes the file.
func (p *Provider) Close() (err error) {
	defer err2.Handle(&err, "storage close")

	p.l.Lock()
	defer p.l.Unlock()

	if p.cron != nil {
		p.cron.Stop()
		p.cron = nil
	}
	if p.db == nil {
		glog.Warningf("skipping storage close for %s, already closed", p.cfg.Filename)
		return nil
	}
	try.To(p.db.Close())
	p.db = nil
	return nil
}

// Backup writes a consistent copy of the database to the backup file and
// returns its name.
func (p *Provider) Backup() (name string, err error) {
	defer err2.Handle(&err, func(err error) error {
		return vcxerr.Wrap(vcxerr.IOError, err, "backup")
	})

	p.l.RLock()
	defer p.l.RUnlock()

	if p.db == nil {
		return "", errNotOpen
	}
	name = p.cfg.BackupName
	tmpName := name + ".tmp"
	try.To(p.db.View(func(tx *bolt.Tx) error {
		return tx.CopyFile(tmpName, 0600)
	}))
	try.To(os.Rename(tmpName, name))
	glog.V(1).Infoln("storage backup done:", name)
	return name, nil
}

// ScheduleBackups starts periodic backups. Close stops them.
func (p *Provider) ScheduleBackups(interval time.Duration) (err error) {
	defer err2.Handle(&err, "schedule backups")

	p.l.Lock()
	defer p.l.Unlock()

	if p.cron != nil {
		p.cron.Stop()
	}
	p.cron = gocron.NewScheduler(time.Now().Location())
	try.To1(p.cron.Every(interval).WaitForSchedule().Do(func() {
		if _, err := p.Backup(); err != nil {
			glog.Errorln("scheduled backup:", err)
		}
	}))
	p.cron.StartAsync()
	glog.V(1).Infoln("storage backups scheduled every", interval)
	return nil
}

func (p *Provider) hash(key []byte) []byte {
	if p.cipher != nil {
		h := md5.Sum(key)
		return h[:]
	}
	return append(key[:0:0], key...)
}

func (p *Provider) encrypt(value []byte) []byte {
	if p.cipher != nil {
		return p.cipher.TryEncrypt(value)
	}
	return append(value[:0:0], value...)
}

func (p *Provider) decrypt(value []byte) []byte {
	if p.cipher != nil {
		return p.cipher.TryDecrypt(value)
	}
	return append(value[:0:0], value...)
}

func (p *Provider) update(bucket string, f func(b *bolt.Bucket) error) error {
	p.l.RLock()
	defer p.l.RUnlock()

	if p.db == nil {
		return errNotOpen
	}
	return p.db.Update(func(tx *bolt.Tx) error {
		return f(tx.Bucket([]byte(bucket)))
	})
}

func (p *Provider) view(bucket string, f func(b *bolt.Bucket) error) error {
	p.l.RLock()
	defer p.l.RUnlock()

	if p.db == nil {
		return errNotOpen
	}
	return p.db.View(func(tx *bolt.Tx) error {
		return f(tx.Bucket([]byte(bucket)))
	})
}
