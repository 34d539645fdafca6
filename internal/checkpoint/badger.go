package checkpoint

import (
	"encoding/json"
	"fmt"

	badger "github.com/dgraph-io/badger/v4"

	"github.com/openlogreplicator-go/dictionary/internal/dicterrors"
)

// badgerHeaderKey, badgerCatalogKeyPrefix, and badgerSchemaKey are the
// fixed keys a BadgerStore writes a checkpoint's JSON arrays under —
// the document's top-level shape is unchanged, only its storage medium
// differs (§10's domain-stack home for dgraph-io/badger/v4).
const (
	badgerHeaderKey        = "header"
	badgerSchemaKey        = "schema"
	badgerCatalogKeyPrefix = "catalog:"
)

// BadgerStore is an optional embedded-KV checkpoint backend, an
// alternative to the plain JSON file of SaveFile/LoadFile. cmd/dictserver
// does not use it and has no option that selects it.
type BadgerStore struct {
	db *badger.DB
}

// OpenBadgerStore opens (creating if absent) a badger database at dir.
func OpenBadgerStore(dir string) (*BadgerStore, error) {
	db, err := badger.Open(badger.DefaultOptions(dir))
	if err != nil {
		return nil, fmt.Errorf("checkpoint: open badger store at %s: %w", dir, err)
	}
	return &BadgerStore{db: db}, nil
}

// Close releases the underlying badger database.
func (s *BadgerStore) Close() error {
	return s.db.Close()
}

// Save writes doc's header, every catalog table array, and the schema
// array each under their own badger key.
func (s *BadgerStore) Save(doc *Document) error {
	return s.db.Update(func(txn *badger.Txn) error {
		if err := putJSON(txn, badgerHeaderKey, doc.Header); err != nil {
			return err
		}
		if err := putJSON(txn, badgerCatalogKeyPrefix+"user", doc.User); err != nil {
			return err
		}
		if err := putJSON(txn, badgerCatalogKeyPrefix+"obj", doc.Obj); err != nil {
			return err
		}
		if err := putJSON(txn, badgerCatalogKeyPrefix+"col", doc.Col); err != nil {
			return err
		}
		if err := putJSON(txn, badgerCatalogKeyPrefix+"ccol", doc.CCol); err != nil {
			return err
		}
		if err := putJSON(txn, badgerCatalogKeyPrefix+"cdef", doc.CDef); err != nil {
			return err
		}
		if err := putJSON(txn, badgerCatalogKeyPrefix+"deferred_stg", doc.DeferredStg); err != nil {
			return err
		}
		if err := putJSON(txn, badgerCatalogKeyPrefix+"ecol", doc.ECol); err != nil {
			return err
		}
		if err := putJSON(txn, badgerCatalogKeyPrefix+"seg", doc.Seg); err != nil {
			return err
		}
		if err := putJSON(txn, badgerCatalogKeyPrefix+"tab", doc.Tab); err != nil {
			return err
		}
		if err := putJSON(txn, badgerCatalogKeyPrefix+"tabpart", doc.TabPart); err != nil {
			return err
		}
		if err := putJSON(txn, badgerCatalogKeyPrefix+"tabcompart", doc.TabComPart); err != nil {
			return err
		}
		if err := putJSON(txn, badgerCatalogKeyPrefix+"tabsubpart", doc.TabSubPart); err != nil {
			return err
		}
		if err := putJSON(txn, badgerCatalogKeyPrefix+"ts", doc.Ts); err != nil {
			return err
		}
		if err := putJSON(txn, badgerCatalogKeyPrefix+"lob", doc.Lob); err != nil {
			return err
		}
		if err := putJSON(txn, badgerCatalogKeyPrefix+"lobfrag", doc.LobFrag); err != nil {
			return err
		}
		if err := putJSON(txn, badgerCatalogKeyPrefix+"lobcomppart", doc.LobCompPart); err != nil {
			return err
		}
		return putJSON(txn, badgerSchemaKey, doc.Schema)
	})
}

// Load reassembles a Document from badger, structurally validating it
// exactly as LoadFile does for the plain-file backend.
func (s *BadgerStore) Load() (*Document, error) {
	var doc Document
	err := s.db.View(func(txn *badger.Txn) error {
		if err := getJSON(txn, badgerHeaderKey, &doc.Header); err != nil {
			return err
		}
		for key, dst := range map[string]any{
			badgerCatalogKeyPrefix + "user":         &doc.User,
			badgerCatalogKeyPrefix + "obj":          &doc.Obj,
			badgerCatalogKeyPrefix + "col":          &doc.Col,
			badgerCatalogKeyPrefix + "ccol":         &doc.CCol,
			badgerCatalogKeyPrefix + "cdef":         &doc.CDef,
			badgerCatalogKeyPrefix + "deferred_stg": &doc.DeferredStg,
			badgerCatalogKeyPrefix + "ecol":         &doc.ECol,
			badgerCatalogKeyPrefix + "seg":          &doc.Seg,
			badgerCatalogKeyPrefix + "tab":          &doc.Tab,
			badgerCatalogKeyPrefix + "tabpart":      &doc.TabPart,
			badgerCatalogKeyPrefix + "tabcompart":   &doc.TabComPart,
			badgerCatalogKeyPrefix + "tabsubpart":   &doc.TabSubPart,
			badgerCatalogKeyPrefix + "ts":           &doc.Ts,
			badgerCatalogKeyPrefix + "lob":          &doc.Lob,
			badgerCatalogKeyPrefix + "lobfrag":      &doc.LobFrag,
			badgerCatalogKeyPrefix + "lobcomppart":  &doc.LobCompPart,
		} {
			if err := getJSON(txn, key, dst); err != nil {
				return err
			}
		}
		return getJSON(txn, badgerSchemaKey, &doc.Schema)
	})
	if err != nil {
		return nil, err
	}
	if err := Validate("badger://"+s.db.Opts().Dir, &doc); err != nil {
		return nil, err
	}
	return &doc, nil
}

func putJSON(txn *badger.Txn, key string, v any) error {
	b, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("checkpoint: marshal %s: %w", key, err)
	}
	return txn.Set([]byte(key), b)
}

func getJSON(txn *badger.Txn, key string, dst any) error {
	item, err := txn.Get([]byte(key))
	if err != nil {
		if err == badger.ErrKeyNotFound {
			return nil
		}
		return fmt.Errorf("checkpoint: get %s: %w", key, err)
	}
	return item.Value(func(val []byte) error {
		if err := json.Unmarshal(val, dst); err != nil {
			return dicterrors.NewCheckpointSchemaCorrupt(key, fmt.Sprintf("invalid JSON: %v", err))
		}
		return nil
	})
}
