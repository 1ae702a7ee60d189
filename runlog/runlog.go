// Package runlog keeps a record of decoded genes in a bolt database,
// one entry per locus tag.
package runlog

import (
	"encoding/json"
	"time"

	"github.com/op/go-logging"

	bolt "go.etcd.io/bbolt"
)

// log is the global logging variable.
var log = logging.MustGetLogger("runlog")

// MAIN is the bucket name for all entries.
var MAIN = []byte("runs")

// Entry stores the result of decoding one gene.
type Entry struct {
	LocusTag      string    `json:"locusTag"`
	Product       string    `json:"product"`
	GeneLength    int       `json:"geneLength"`
	ProteinLength int       `json:"proteinLength"`
	Protein       string    `json:"protein"`
	Time          time.Time `json:"time"`
}

// IO provides saving and loading of run entries. A nil database
// turns all operations into no-ops.
type IO struct {
	db *bolt.DB
}

// NewIO creates a new IO on top of an open bolt database.
func NewIO(db *bolt.DB) *IO {
	return &IO{db: db}
}

// Save stores the entry under its locus tag.
func (s *IO) Save(e *Entry) error {
	data, err := json.Marshal(e)
	if err != nil {
		log.Error("Error serializing run entry", err)
		return err
	}
	err = SaveData(s.db, []byte(e.LocusTag), data)
	if err != nil {
		log.Error("Error saving run entry", err)
	}
	return err
}

// Last returns the stored entry for a locus tag, nil if the gene was
// never decoded.
func (s *IO) Last(locusTag string) (*Entry, error) {
	b, err := LoadData(s.db, []byte(locusTag))
	if err != nil || b == nil {
		return nil, err
	}

	var e *Entry
	err = json.Unmarshal(b, &e)
	if err != nil {
		return nil, err
	}

	if e != nil {
		log.Noticef("Found earlier decode of %s (%s, %d aa)", e.LocusTag, e.Product, e.ProteinLength)
	}

	return e, nil
}

// SaveData saves values in bolt database.
func SaveData(db *bolt.DB, key []byte, data []byte) error {
	if db == nil {
		return nil
	}
	err := db.Update(func(tx *bolt.Tx) error {
		b, err := tx.CreateBucketIfNotExists(MAIN)
		if err != nil {
			return err
		}

		return b.Put(key, data)
	})
	return err
}

// LoadData loads data from bolt database.
func LoadData(db *bolt.DB, key []byte) ([]byte, error) {
	var data []byte
	if db == nil {
		return nil, nil
	}
	err := db.View(func(tx *bolt.Tx) error {
		b := tx.Bucket(MAIN)
		if b == nil {
			return nil
		}

		v := b.Get(key)
		if v != nil {
			data = make([]byte, len(v))
			copy(data, v)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return data, nil
}
