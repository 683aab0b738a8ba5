package store

import (
	"bytes"
	"encoding/binary"

	"github.com/cockroachdb/errors"
	"go.uber.org/zap"

	"github.com/aleksaelezovic/simplerdf/pkg/dataset"
	"github.com/aleksaelezovic/simplerdf/pkg/rdf"
)

// SnapshotStore keeps named, immutable copies of datasets. Loading a snapshot
// always returns a fresh Dataset, so callers sharing data across goroutines
// can hand out copies instead of the live dataset.
//
// Term payloads are shared between snapshots and are kept when a snapshot is
// deleted.
type SnapshotStore struct {
	storage Storage
	encoder TermEncoder
	decoder TermDecoder
	logger  *zap.Logger
	metrics *Metrics
}

// Option configures a SnapshotStore.
type Option func(*SnapshotStore)

func WithLogger(logger *zap.Logger) Option {
	return func(s *SnapshotStore) {
		if logger != nil {
			s.logger = logger
		}
	}
}

func WithMetrics(metrics *Metrics) Option {
	return func(s *SnapshotStore) {
		s.metrics = metrics
	}
}

// NewSnapshotStore creates a snapshot store on top of storage.
func NewSnapshotStore(storage Storage, encoder TermEncoder, decoder TermDecoder, opts ...Option) *SnapshotStore {
	s := &SnapshotStore{
		storage: storage,
		encoder: encoder,
		decoder: decoder,
		logger:  zap.NewNop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Close closes the underlying storage
func (s *SnapshotStore) Close() error {
	return s.storage.Close()
}

// Save stores the quads of d under name in iteration order, replacing any
// previous snapshot with the same name in the same transaction.
func (s *SnapshotStore) Save(name string, d *dataset.Dataset) error {
	if err := validateName(name); err != nil {
		return err
	}
	if d == nil {
		return errors.Wrap(rdf.ErrNilTerm, "dataset")
	}

	txn, err := s.storage.Begin(true)
	if err != nil {
		return err
	}
	defer txn.Rollback()

	if err := deleteQuads(txn, name); err != nil {
		return err
	}

	stored := make(map[EncodedTerm]struct{})
	var seq uint64
	for q := range d.All() {
		value, payloads, err := s.encoder.EncodeQuad(q)
		if err != nil {
			return errors.Wrapf(err, "failed to encode %s", q)
		}
		for _, p := range payloads {
			if _, ok := stored[p.Key]; ok {
				continue
			}
			if err := txn.Set(TableID2Str, p.Key[:], p.Data); err != nil {
				return err
			}
			stored[p.Key] = struct{}{}
		}
		if err := txn.Set(TableQuads, quadKey(name, seq), value); err != nil {
			return err
		}
		seq++
	}

	if err := txn.Set(TableSnapshots, []byte(name), binary.AppendUvarint(nil, seq)); err != nil {
		return err
	}
	if err := txn.Commit(); err != nil {
		return errors.Wrapf(err, "failed to commit snapshot %q", name)
	}

	s.metrics.saved(int(seq))
	s.logger.Debug("saved snapshot",
		zap.String("name", name),
		zap.Uint64("quads", seq),
		zap.Int("terms", len(stored)))
	return nil
}

// Load rebuilds the dataset saved under name.
func (s *SnapshotStore) Load(name string) (*dataset.Dataset, error) {
	if err := validateName(name); err != nil {
		return nil, err
	}

	txn, err := s.storage.Begin(false)
	if err != nil {
		return nil, err
	}
	defer txn.Rollback()

	count, err := readHeader(txn, name)
	if err != nil {
		return nil, err
	}

	lookup := func(key EncodedTerm) ([]byte, error) {
		return txn.Get(TableID2Str, key[:])
	}

	it, err := txn.Scan(TableQuads, quadPrefix(name), nil)
	if err != nil {
		return nil, err
	}
	defer it.Close()

	quads := make([]*rdf.Quad, 0, count)
	for it.Next() {
		value, err := it.Value()
		if err != nil {
			return nil, err
		}
		q, err := s.decoder.DecodeQuad(value, lookup)
		if err != nil {
			if errors.Is(err, ErrNotFound) {
				return nil, errors.WithSecondaryError(
					errors.Wrapf(ErrCorruptSnapshot, "snapshot %q: missing term payload", name), err)
			}
			return nil, errors.Wrapf(err, "snapshot %q", name)
		}
		quads = append(quads, q)
	}
	if uint64(len(quads)) != count {
		return nil, errors.Wrapf(ErrCorruptSnapshot, "snapshot %q: expected %d quads, found %d", name, count, len(quads))
	}

	s.metrics.loaded()
	s.logger.Debug("loaded snapshot",
		zap.String("name", name),
		zap.Int("quads", len(quads)))
	return dataset.New(quads...), nil
}

// Delete removes the snapshot saved under name.
func (s *SnapshotStore) Delete(name string) error {
	if err := validateName(name); err != nil {
		return err
	}

	txn, err := s.storage.Begin(true)
	if err != nil {
		return err
	}
	defer txn.Rollback()

	if _, err := readHeader(txn, name); err != nil {
		return err
	}
	if err := deleteQuads(txn, name); err != nil {
		return err
	}
	if err := txn.Delete(TableSnapshots, []byte(name)); err != nil {
		return err
	}
	if err := txn.Commit(); err != nil {
		return errors.Wrapf(err, "failed to delete snapshot %q", name)
	}

	s.logger.Debug("deleted snapshot", zap.String("name", name))
	return nil
}

// List returns the names of all snapshots, sorted.
func (s *SnapshotStore) List() ([]string, error) {
	txn, err := s.storage.Begin(false)
	if err != nil {
		return nil, err
	}
	defer txn.Rollback()

	it, err := txn.Scan(TableSnapshots, nil, nil)
	if err != nil {
		return nil, err
	}
	defer it.Close()

	var names []string
	for it.Next() {
		names = append(names, string(it.Key()))
	}
	return names, nil
}

func validateName(name string) error {
	if name == "" {
		return errors.Wrap(ErrInvalidSnapshotName, "name can't be empty")
	}
	if bytes.IndexByte([]byte(name), 0) >= 0 {
		return errors.Wrapf(ErrInvalidSnapshotName, "name %q contains a NUL byte", name)
	}
	return nil
}

func readHeader(txn Transaction, name string) (uint64, error) {
	header, err := txn.Get(TableSnapshots, []byte(name))
	if errors.Is(err, ErrNotFound) {
		return 0, errors.Wrapf(ErrSnapshotNotFound, "%q", name)
	}
	if err != nil {
		return 0, err
	}
	count, n := binary.Uvarint(header)
	if n <= 0 {
		return 0, errors.Wrapf(ErrCorruptSnapshot, "snapshot %q: bad header", name)
	}
	return count, nil
}

// quadPrefix is name followed by a NUL byte, so "a" never scans "ab".
func quadPrefix(name string) []byte {
	return append([]byte(name), 0)
}

// quadKey appends a big-endian sequence number to the prefix so keys sort in
// insertion order.
func quadKey(name string, seq uint64) []byte {
	return binary.BigEndian.AppendUint64(quadPrefix(name), seq)
}

func deleteQuads(txn Transaction, name string) error {
	it, err := txn.Scan(TableQuads, quadPrefix(name), nil)
	if err != nil {
		return err
	}
	var keys [][]byte
	for it.Next() {
		keys = append(keys, append([]byte(nil), it.Key()...))
	}
	if err := it.Close(); err != nil {
		return err
	}
	for _, key := range keys {
		if err := txn.Delete(TableQuads, key); err != nil {
			return err
		}
	}
	return nil
}
