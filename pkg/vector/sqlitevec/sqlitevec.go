// Package sqlitevec provides a SQLite-backed vector driver using sqlite-vec.
package sqlitevec

import (
	"context"
	"database/sql"
	"encoding/binary"
	"fmt"
	"log/slog"
	"math"
	"strings"

	sqlite_vec "github.com/asg017/sqlite-vec-go-bindings/cgo"
	_ "github.com/mattn/go-sqlite3"

	"github.com/harshitMehrag/snowflake-langgraph-agent/pkg/vector"
)

// Driver implements vector.Driver using SQLite with sqlite-vec.
type Driver struct {
	db     *sql.DB
	logger *slog.Logger
}

// Config holds configuration for the SQLite vec driver.
type Config struct {
	// DBPath is the path to the SQLite database file.
	// Use ":memory:" for an in-memory database.
	DBPath string

	// Dimensions is the number of dimensions for the embedding vectors.
	Dimensions uint
}

// NewDriver creates a new SQLite vector driver backed by sqlite-vec.
func NewDriver(c Config, logger *slog.Logger) (*Driver, error) {
	// enable connection to have sqlite-vec extension
	sqlite_vec.Auto()

	if c.DBPath == "" {
		return nil, fmt.Errorf("database path is required")
	}

	dimensions := c.Dimensions
	if dimensions == 0 {
		return nil, fmt.Errorf("sqlite-vec embedding dimensions cannot be 0, must be configured")
	}

	db, err := sql.Open("sqlite3", c.DBPath)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	// Verify sqlite-vec is loaded
	var vecVersion string
	if err := db.QueryRow("SELECT vec_version()").Scan(&vecVersion); err != nil {
		db.Close()
		return nil, fmt.Errorf("sqlite-vec not available: %w", err)
	}

	// Chunk ID mapping table. vec0 virtual tables use integer rowids, so we
	// need a mapping from string chunk IDs to integer rowids. The chunk text
	// and source live here so Query can return them without a second store.
	_, err = db.Exec(`
		CREATE TABLE IF NOT EXISTS chunks (
			rowid INTEGER PRIMARY KEY AUTOINCREMENT,
			chunk_id TEXT NOT NULL UNIQUE,
			source TEXT NOT NULL DEFAULT '',
			chunk_text TEXT NOT NULL DEFAULT ''
		)
	`)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("creating chunks table: %w", err)
	}

	// vec0 virtual table for vector storage and KNN queries. Cosine distance
	// matches the ranking the search tool documents.
	createVec := fmt.Sprintf(
		`CREATE VIRTUAL TABLE IF NOT EXISTS chunk_embeddings USING vec0(embedding float[%d] distance_metric=cosine)`,
		dimensions,
	)
	if _, err := db.Exec(createVec); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating vec0 table: %w", err)
	}

	logger.Info("sqlite-vec vector driver initialized",
		"db_path", c.DBPath,
		"dimensions", dimensions,
		"vec_version", vecVersion,
	)

	return &Driver{
		db:     db,
		logger: logger,
	}, nil
}

// serializeFloat32 converts a float32 slice to a little-endian byte slice
// suitable for sqlite-vec BLOB format.
func serializeFloat32(v []float32) []byte {
	buf := make([]byte, len(v)*4)
	for i, f := range v {
		binary.LittleEndian.PutUint32(buf[i*4:], math.Float32bits(f))
	}
	return buf
}

// deserializeFloat32 converts a little-endian byte slice back to a float32 slice.
func deserializeFloat32(b []byte) ([]float32, error) {
	if len(b)%4 != 0 {
		return nil, fmt.Errorf("invalid embedding blob length %d: must be divisible by 4", len(b))
	}
	v := make([]float32, len(b)/4)
	for i := range v {
		v[i] = math.Float32frombits(binary.LittleEndian.Uint32(b[i*4:]))
	}
	return v, nil
}

// Add stores documents with their embeddings.
// If a document with the same ID already exists, it is updated.
func (d *Driver) Add(ctx context.Context, docs []vector.Document) error {
	if len(docs) == 0 {
		return nil
	}

	tx, err := d.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	for _, doc := range docs {
		embBlob := serializeFloat32(doc.Embedding)

		var existingRowID int64
		err = tx.QueryRowContext(ctx,
			`SELECT rowid FROM chunks WHERE chunk_id = ?`, doc.ID,
		).Scan(&existingRowID)

		switch err {
		case nil:
			if _, err := tx.ExecContext(ctx,
				`UPDATE chunks SET source = ?, chunk_text = ? WHERE rowid = ?`,
				doc.Source, doc.Text, existingRowID,
			); err != nil {
				return fmt.Errorf("updating chunk %s: %w", doc.ID, err)
			}

			// vec0 does not support UPDATE, replace via DELETE + INSERT
			if _, err := tx.ExecContext(ctx,
				`DELETE FROM chunk_embeddings WHERE rowid = ?`, existingRowID,
			); err != nil {
				return fmt.Errorf("deleting old embedding for chunk %s: %w", doc.ID, err)
			}

			if _, err := tx.ExecContext(ctx,
				`INSERT INTO chunk_embeddings(rowid, embedding) VALUES (?, ?)`,
				existingRowID, embBlob,
			); err != nil {
				return fmt.Errorf("re-inserting embedding for chunk %s: %w", doc.ID, err)
			}
		case sql.ErrNoRows:
			result, err := tx.ExecContext(ctx,
				`INSERT INTO chunks(chunk_id, source, chunk_text) VALUES (?, ?, ?)`,
				doc.ID, doc.Source, doc.Text,
			)
			if err != nil {
				return fmt.Errorf("inserting chunk %s: %w", doc.ID, err)
			}

			rowID, err := result.LastInsertId()
			if err != nil {
				return fmt.Errorf("getting rowid for chunk %s: %w", doc.ID, err)
			}

			if _, err := tx.ExecContext(ctx,
				`INSERT INTO chunk_embeddings(rowid, embedding) VALUES (?, ?)`,
				rowID, embBlob,
			); err != nil {
				return fmt.Errorf("inserting embedding for chunk %s: %w", doc.ID, err)
			}
		default:
			return fmt.Errorf("checking for existing chunk %s: %w", doc.ID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing transaction: %w", err)
	}

	d.logger.Debug("added chunks to sqlite-vec", "count", len(docs))

	return nil
}

// Query finds the topK most similar documents to the given embedding,
// most similar first.
func (d *Driver) Query(ctx context.Context, embedding []float32, topK int) ([]vector.QueryResult, error) {
	if topK <= 0 {
		topK = 3
	}

	queryBlob := serializeFloat32(embedding)

	// KNN query via vec0 MATCH, then JOIN back to recover the chunk.
	rows, err := d.db.QueryContext(ctx, `
		SELECT
			c.chunk_id,
			c.source,
			c.chunk_text,
			ce.distance
		FROM chunk_embeddings ce
		INNER JOIN chunks c ON c.rowid = ce.rowid
		WHERE ce.embedding MATCH ?
			AND ce.k = ?
		ORDER BY ce.distance
	`, queryBlob, topK)
	if err != nil {
		return nil, fmt.Errorf("querying vectors: %w", err)
	}
	defer rows.Close()

	var results []vector.QueryResult
	for rows.Next() {
		var chunkID, source, text string
		var distance float64
		if err := rows.Scan(&chunkID, &source, &text, &distance); err != nil {
			return nil, fmt.Errorf("scanning query result: %w", err)
		}

		results = append(results, vector.QueryResult{
			Document: vector.Document{
				ID:     chunkID,
				Source: source,
				Text:   text,
			},
			// Cosine distance in [0, 2]; lower distance = higher similarity.
			Score: float32(1.0 - distance),
		})
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating query results: %w", err)
	}

	d.logger.Debug("queried sqlite-vec", "results", len(results))

	return results, nil
}

// Get retrieves documents by their IDs.
func (d *Driver) Get(ctx context.Context, ids []string) ([]vector.Document, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	placeholders := make([]string, len(ids))
	args := make([]any, len(ids))
	for i, id := range ids {
		placeholders[i] = "?"
		args[i] = id
	}

	query := fmt.Sprintf(`
		SELECT c.chunk_id, c.source, c.chunk_text, c.rowid
		FROM chunks c
		WHERE c.chunk_id IN (%s)
	`, strings.Join(placeholders, ","))

	rows, err := d.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("querying chunks: %w", err)
	}
	defer rows.Close()

	// Collect results first so we can close the rows cursor before issuing
	// additional queries (SQLite uses a single connection).
	type chunkRow struct {
		chunkID string
		source  string
		text    string
		rowID   int64
	}
	var chunkRows []chunkRow

	for rows.Next() {
		var cr chunkRow
		if err := rows.Scan(&cr.chunkID, &cr.source, &cr.text, &cr.rowID); err != nil {
			return nil, fmt.Errorf("scanning chunk: %w", err)
		}
		chunkRows = append(chunkRows, cr)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating chunks: %w", err)
	}
	rows.Close()

	docs := make([]vector.Document, 0, len(chunkRows))
	for _, cr := range chunkRows {
		doc := vector.Document{
			ID:     cr.chunkID,
			Source: cr.source,
			Text:   cr.text,
		}

		var embBlob []byte
		err := d.db.QueryRowContext(ctx,
			`SELECT embedding FROM chunk_embeddings WHERE rowid = ?`, cr.rowID,
		).Scan(&embBlob)
		if err == nil {
			emb, err := deserializeFloat32(embBlob)
			if err != nil {
				return nil, fmt.Errorf("deserializing embedding for chunk %s: %w", cr.chunkID, err)
			}
			doc.Embedding = emb
		} else if err != sql.ErrNoRows {
			return nil, fmt.Errorf("querying embedding for chunk %s: %w", cr.chunkID, err)
		}

		docs = append(docs, doc)
	}

	return docs, nil
}

// Delete removes documents by their IDs.
func (d *Driver) Delete(ctx context.Context, ids []string) error {
	if len(ids) == 0 {
		return nil
	}

	tx, err := d.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	for _, id := range ids {
		var rowID int64
		err := tx.QueryRowContext(ctx,
			`SELECT rowid FROM chunks WHERE chunk_id = ?`, id,
		).Scan(&rowID)
		if err == sql.ErrNoRows {
			continue
		}
		if err != nil {
			return fmt.Errorf("looking up chunk %s: %w", id, err)
		}

		if _, err := tx.ExecContext(ctx,
			`DELETE FROM chunk_embeddings WHERE rowid = ?`, rowID,
		); err != nil {
			return fmt.Errorf("deleting embedding for chunk %s: %w", id, err)
		}

		if _, err := tx.ExecContext(ctx,
			`DELETE FROM chunks WHERE rowid = ?`, rowID,
		); err != nil {
			return fmt.Errorf("deleting chunk %s: %w", id, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing transaction: %w", err)
	}

	return nil
}

// Close releases resources held by the driver.
func (d *Driver) Close() error {
	return d.db.Close()
}

// Ensure Driver implements vector.Driver
var _ vector.Driver = (*Driver)(nil)
