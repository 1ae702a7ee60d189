package runlog

import (
	"path/filepath"
	"testing"
	"time"

	bolt "go.etcd.io/bbolt"
)

func TestSaveLoad(tst *testing.T) {
	db, err := bolt.Open(filepath.Join(tst.TempDir(), "runlog.db"), 0644, nil)
	if err != nil {
		tst.Fatal("Error opening database:", err)
	}
	defer db.Close()

	rl := NewIO(db)

	e := &Entry{
		LocusTag:      "YP_RS22230",
		Product:       "pesticin",
		GeneLength:    1074,
		ProteinLength: 358,
		Protein:       "MSDT",
		Time:          time.Now().Round(time.Second),
	}
	if err := rl.Save(e); err != nil {
		tst.Fatal("Error saving entry:", err)
	}

	got, err := rl.Last("YP_RS22230")
	if err != nil {
		tst.Fatal("Error loading entry:", err)
	}
	if got == nil {
		tst.Fatal("Expected a stored entry")
	}
	if got.LocusTag != e.LocusTag || got.Product != e.Product ||
		got.GeneLength != e.GeneLength || got.ProteinLength != e.ProteinLength ||
		got.Protein != e.Protein || !got.Time.Equal(e.Time) {
		tst.Errorf("Loaded entry differs: %+v != %+v", got, e)
	}
}

func TestLastMissing(tst *testing.T) {
	db, err := bolt.Open(filepath.Join(tst.TempDir(), "runlog.db"), 0644, nil)
	if err != nil {
		tst.Fatal("Error opening database:", err)
	}
	defer db.Close()

	got, err := NewIO(db).Last("YP_RS22210")
	if err != nil {
		tst.Error("Unexpected error:", err)
	}
	if got != nil {
		tst.Error("Expected no entry, got:", got)
	}
}

func TestNilDB(tst *testing.T) {
	rl := NewIO(nil)
	if err := rl.Save(&Entry{LocusTag: "YP_RS22210"}); err != nil {
		tst.Error("Save with nil db should be a no-op, got:", err)
	}
	got, err := rl.Last("YP_RS22210")
	if err != nil || got != nil {
		tst.Error("Last with nil db should return nothing, got:", got, err)
	}
}
