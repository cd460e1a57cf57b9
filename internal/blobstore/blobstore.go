package blobstore

import (
	"github.com/pkg/errors"
	bolt "go.etcd.io/bbolt"
)

// Store is the binary object boundary: put bytes under a key, read them
// back, and obtain a durable fetch URL for a stored key.
type Store interface {
	Put(key string, data []byte, contentType string) error
	Get(key string) (data []byte, contentType string, err error)
	Delete(key string) error
	// URL returns the stable retrieval path for a stored key.
	URL(key string) string
	Close() error
}

var (
	bucketObjects = []byte("objects")
	bucketMeta    = []byte("meta")

	ErrNotFound = errors.New("blobstore: object not found")
)

// BoltStore keeps binary objects in a local bbolt database, served back
// through the web tier's storage route.
type BoltStore struct {
	db      *bolt.DB
	baseURL string
}

// NewBoltStore opens (or creates) the blob database at path. baseURL is the
// public route prefix objects are served under, e.g. "/api/v1/storage".
func NewBoltStore(path, baseURL string) (*BoltStore, error) {
	db, err := bolt.Open(path, 0o600, nil)
	if err != nil {
		return nil, errors.Wrap(err, "open blobstore")
	}
	err = db.Update(func(tx *bolt.Tx) error {
		if _, err := tx.CreateBucketIfNotExists(bucketObjects); err != nil {
			return err
		}
		_, err := tx.CreateBucketIfNotExists(bucketMeta)
		return err
	})
	if err != nil {
		_ = db.Close()
		return nil, errors.Wrap(err, "init blobstore buckets")
	}
	return &BoltStore{db: db, baseURL: baseURL}, nil
}

func (s *BoltStore) Put(key string, data []byte, contentType string) error {
	err := s.db.Update(func(tx *bolt.Tx) error {
		if err := tx.Bucket(bucketObjects).Put([]byte(key), data); err != nil {
			return err
		}
		return tx.Bucket(bucketMeta).Put([]byte(key), []byte(contentType))
	})
	return errors.Wrapf(err, "put %s", key)
}

func (s *BoltStore) Get(key string) ([]byte, string, error) {
	var data []byte
	var contentType string
	err := s.db.View(func(tx *bolt.Tx) error {
		v := tx.Bucket(bucketObjects).Get([]byte(key))
		if v == nil {
			return ErrNotFound
		}
		data = make([]byte, len(v))
		copy(data, v)
		if m := tx.Bucket(bucketMeta).Get([]byte(key)); m != nil {
			contentType = string(m)
		}
		return nil
	})
	if err != nil {
		return nil, "", err
	}
	return data, contentType, nil
}

func (s *BoltStore) Delete(key string) error {
	return s.db.Update(func(tx *bolt.Tx) error {
		if err := tx.Bucket(bucketObjects).Delete([]byte(key)); err != nil {
			return err
		}
		return tx.Bucket(bucketMeta).Delete([]byte(key))
	})
}

func (s *BoltStore) URL(key string) string {
	return s.baseURL + "/" + key
}

func (s *BoltStore) Close() error {
	return s.db.Close()
}
