package store

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/anirudh/studyloop/ent"
	"github.com/anirudh/studyloop/ent/snapshot"
)

// snapshotRepo implements SnapshotRepo on the ent client. Snapshots are
// ordered by their event sequence number, not insertion time, so the
// "latest" snapshot is the one covering the most events.
type snapshotRepo struct {
	client *ent.Client
}

func (r *snapshotRepo) Save(ctx context.Context, snap *Snapshot) error {
	// The snapshot column is a JSON blob; round-trip through the typed
	// struct so field tags decide the stored shape.
	raw, err := json.Marshal(snap.Data)
	if err != nil {
		return fmt.Errorf("marshal snapshot data: %w", err)
	}
	var blob map[string]any
	if err := json.Unmarshal(raw, &blob); err != nil {
		return fmt.Errorf("marshal snapshot data: %w", err)
	}

	if _, err := r.client.Snapshot.Create().
		SetSequence(snap.Sequence).
		SetTimestamp(snap.Timestamp).
		SetData(blob).
		Save(ctx); err != nil {
		return fmt.Errorf("save snapshot: %w", err)
	}
	return nil
}

func (r *snapshotRepo) Latest(ctx context.Context) (*Snapshot, error) {
	row, err := r.client.Snapshot.Query().
		Order(ent.Desc(snapshot.FieldSequence)).
		First(ctx)
	if ent.IsNotFound(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("query latest snapshot: %w", err)
	}

	snap := &Snapshot{
		ID:        row.ID,
		Sequence:  row.Sequence,
		Timestamp: row.Timestamp,
	}
	raw, err := json.Marshal(row.Data)
	if err != nil {
		return nil, fmt.Errorf("decode snapshot data: %w", err)
	}
	if err := json.Unmarshal(raw, &snap.Data); err != nil {
		return nil, fmt.Errorf("decode snapshot data: %w", err)
	}
	return snap, nil
}

func (r *snapshotRepo) Prune(ctx context.Context, keep int) error {
	// The keep-th newest snapshot (by sequence) marks the cutoff;
	// everything at or before the next one goes.
	cutoff, err := r.client.Snapshot.Query().
		Order(ent.Desc(snapshot.FieldSequence)).
		Offset(keep).
		First(ctx)
	if ent.IsNotFound(err) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("query prune cutoff: %w", err)
	}

	if _, err := r.client.Snapshot.Delete().
		Where(snapshot.SequenceLTE(cutoff.Sequence)).
		Exec(ctx); err != nil {
		return fmt.Errorf("prune snapshots: %w", err)
	}
	return nil
}
