package storage

import (
	"errors"

	"github.com/golang/glog"
	"github.com/hyperledger/aries-framework-go/spi/storage"
	"github.com/lainio/err2"
	"github.com/lainio/err2/try"
	bolt "go.etcd.io/bbolt"
)

var errTagsNotSupported = errors.New("tags not supported")

// Store is one bucket of the database.
type Store struct {
	name  string
	owner *Provider
}

var _ storage.Store = (*Store)(nil)

// Put stores the key value pair. Tags aren't supported.
func (s *Store) Put(key string, value []byte, tags ...storage.Tag) (err error) {
	defer err2.Handle(&err, "put %s", s.name)

	glog.V(7).Infoln("Store::Put", s.name, key)
	if key == "" || value == nil {
		return errors.New("key and value are mandatory")
	}
	if len(tags) > 0 {
		return errTagsNotSupported
	}
	return s.owner.update(s.name, func(b *bolt.Bucket) error {
		return b.Put(s.owner.hash([]byte(key)), s.owner.encrypt(value))
	})
}

// Get returns the value of the key or storage.ErrDataNotFound.
func (s *Store) Get(key string) (value []byte, err error) {
	defer err2.Handle(&err, "get %s", s.name)

	glog.V(7).Infoln("Store::Get", s.name, key)
	try.To(s.owner.view(s.name, func(b *bolt.Bucket) error {
		d := b.Get(s.owner.hash([]byte(key)))
		if d == nil {
			return storage.ErrDataNotFound
		}
		value = s.owner.decrypt(d)
		return nil
	}))
	return value, nil
}

// GetBulk returns the values of the keys. Missing values are nil.
func (s *Store) GetBulk(keys ...string) (values [][]byte, err error) {
	defer err2.Handle(&err, "get bulk %s", s.name)

	values = make([][]byte, len(keys))
	try.To(s.owner.view(s.name, func(b *bolt.Bucket) error {
		for i, key := range keys {
			if d := b.Get(s.owner.hash([]byte(key))); d != nil {
				values[i] = s.owner.decrypt(d)
			}
		}
		return nil
	}))
	return values, nil
}

// GetAll returns all the values of the store.
func (s *Store) GetAll() (values [][]byte, err error) {
	defer err2.Handle(&err, "get all %s", s.name)

	try.To(s.owner.view(s.name, func(b *bolt.Bucket) error {
		return b.ForEach(func(_, v []byte) error {
			values = append(values, s.owner.decrypt(v))
			return nil
		})
	}))
	return values, nil
}

// Delete removes the key. A missing key isn't an error.
func (s *Store) Delete(key string) (err error) {
	defer err2.Handle(&err, "delete %s", s.name)

	glog.V(7).Infoln("Store::Delete", s.name, key)
	return s.owner.update(s.name, func(b *bolt.Bucket) error {
		return b.Delete(s.owner.hash([]byte(key)))
	})
}

// Batch executes the operations in one transaction. An operation without a
// value is a delete.
func (s *Store) Batch(operations []storage.Operation) (err error) {
	defer err2.Handle(&err, "batch %s", s.name)

	return s.owner.update(s.name, func(b *bolt.Bucket) (err error) {
		defer err2.Handle(&err)

		for _, op := range operations {
			if len(op.Tags) > 0 {
				return errTagsNotSupported
			}
			k := s.owner.hash([]byte(op.Key))
			if op.Value == nil {
				try.To(b.Delete(k))
				continue
			}
			try.To(b.Put(k, s.owner.encrypt(op.Value)))
		}
		return nil
	})
}

// Flush is a no-op, every write is committed when it returns.
func (s *Store) Flush() error {
	return nil
}

// Close is a no-op, Provider closes the file.
func (s *Store) Close() error {
	return nil
}

func (s *Store) GetTags(string) ([]storage.Tag, error) {
	return nil, errTagsNotSupported
}

func (s *Store) Query(string, ...storage.QueryOption) (storage.Iterator, error) {
	return nil, errTagsNotSupported
}
