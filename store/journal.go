package store

import (
	"os"

	badger "github.com/dgraph-io/badger/v2"
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
	"gitlab.com/puppetk/puppetk"
)

const (
	eventPredicate = "evt"
	sequenceKey    = "seq:evt"
)

// Journal keeps every resolution event in insertion order
type Journal struct {
	Store    *badger.DB
	filepath string
	seq      *badger.Sequence
}

// NewJournal stored under filepath
func NewJournal(filepath string) *Journal {
	return &Journal{filepath: filepath}
}

// Init the journal storage
func (j *Journal) Init() error {
	var err error

	if err = os.MkdirAll(j.filepath, 0700); err != nil {
		return err
	}

	opts := badger.DefaultOptions(j.filepath).WithLogger(newBadgerLogger())
	j.Store, err = badger.Open(opts)

	if errors.Is(err, badger.ErrTruncateNeeded) {
		log.Warn().Msg("there was a failure re-opening database, trying to recover")
		opts.Truncate = true
		j.Store, err = badger.Open(opts)
	}

	if err != nil {
		return errors.Wrap(err, "opening journal")
	}

	j.seq, err = j.Store.GetSequence([]byte(sequenceKey), 100)
	if err != nil {
		j.Store.Close()
		return errors.Wrap(err, "getting journal sequence")
	}
	return nil
}

// Record evt at the end of the journal
func (j *Journal) Record(evt *puppetk.ResolutionEvent) error {
	n, err := j.seq.Next()
	if err != nil {
		return err
	}

	bytez, err := EncodeEvent(evt)
	if err != nil {
		return err
	}

	return j.Store.Update(func(txn *badger.Txn) error {
		return txn.Set(MakeKey(EncodeSequence(n), eventPredicate), bytez)
	})
}

// Listener records every resolution made for state, failures are logged
func (j *Journal) Listener(state *puppetk.State) puppetk.Listener {
	var sessionID int64
	if state != nil {
		sessionID = state.ID
	}
	return func(result puppetk.Result, loc puppetk.Locator) {
		if err := j.Record(puppetk.NewResolutionEvent(sessionID, result, loc)); err != nil {
			log.Error().Err(err).Msg("failed to record resolution")
		}
	}
}

// Events in the order they were recorded, at most limit (all if limit <= 0)
func (j *Journal) Events(limit int64) ([]*puppetk.ResolutionEvent, error) {
	events := make([]*puppetk.ResolutionEvent, 0)
	prefix := []byte(eventPredicate + ":")

	err := j.Store.View(func(txn *badger.Txn) error {
		it := txn.NewIterator(badger.IteratorOptions{Prefix: prefix})
		defer it.Close()

		for it.Rewind(); it.Valid(); it.Next() {
			if limit > 0 && int64(len(events)) == limit {
				break
			}

			val, err := it.Item().ValueCopy(nil)
			if err != nil {
				return err
			}

			evt, err := DecodeEvent(val)
			if err != nil {
				return errors.Wrapf(err, "decoding event %d", DecodeSequence(GetID(it.Item().KeyCopy(nil))))
			}
			events = append(events, evt)
		}
		return nil
	})
	return events, err
}

// Close the journal
func (j *Journal) Close() error {
	if j.seq != nil {
		if err := j.seq.Release(); err != nil {
			log.Error().Err(err).Msg("failed to release journal sequence")
		}
	}
	return j.Store.Close()
}
