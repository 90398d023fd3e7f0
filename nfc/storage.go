package nfc

import (
	"encoding/hex"
	"encoding/json"
	"fmt"
	"sort"
	"time"

	"github.com/tidwall/buntdb"
)

// Sighting is the bookkeeping for one UID during the current session.
type Sighting struct {
	UID   string    `json:"uid"`
	Type  string    `json:"type"`
	First time.Time `json:"first"`
	Last  time.Time `json:"last"`
	Count int       `json:"count"`
}

// Tally counts how often each card was shown. It lives in memory only and is
// gone when the process exits.
type Tally struct {
	instance *buntdb.DB
	now      func() time.Time
}

func NewTally() (*Tally, error) {
	db, err := buntdb.Open(":memory:")
	if err != nil {
		return nil, err
	}
	return &Tally{instance: db, now: time.Now}, nil
}

func (t *Tally) Close() error {
	return t.instance.Close()
}

// Handle records NewCard and RepeatCard events and ignores the rest.
func (t *Tally) Handle(e Event) error {
	if e.Outcome != NewCard && e.Outcome != RepeatCard {
		return nil
	}
	now := t.now()
	id := hex.EncodeToString(e.UID)
	return t.instance.Update(func(tx *buntdb.Tx) error {
		s := Sighting{UID: id, Type: e.Type.String(), First: now}
		existing, err := tx.Get(getSightingKey(id))
		switch err {
		case nil:
			if err := json.Unmarshal([]byte(existing), &s); err != nil {
				return err
			}
		case buntdb.ErrNotFound:
		default:
			return err
		}
		s.Last = now
		s.Count++

		data, err := json.Marshal(s)
		if err != nil {
			return err
		}
		_, _, err = tx.Set(getSightingKey(id), string(data), nil)
		return err
	})
}

func (t *Tally) Read(uid UID) (Sighting, error) {
	var s Sighting
	err := t.instance.View(func(tx *buntdb.Tx) error {
		v, err := tx.Get(getSightingKey(hex.EncodeToString(uid)))
		if err != nil {
			return err
		}
		return json.Unmarshal([]byte(v), &s)
	})
	return s, err
}

// All returns every sighting, oldest first.
func (t *Tally) All() ([]Sighting, error) {
	var all []Sighting
	err := t.instance.View(func(tx *buntdb.Tx) error {
		var decodeErr error
		err := tx.AscendKeys("uid:*", func(key, value string) bool {
			var s Sighting
			if decodeErr = json.Unmarshal([]byte(value), &s); decodeErr != nil {
				return false
			}
			all = append(all, s)
			return true
		})
		if err != nil {
			return err
		}
		return decodeErr
	})
	sort.SliceStable(all, func(i, j int) bool {
		return all[i].First.Before(all[j].First)
	})
	return all, err
}

func getSightingKey(id string) string {
	return fmt.Sprintf("uid:%v", id)
}
