// Package qdrant provides a Qdrant-backed vector driver over its gRPC API.
package qdrant

import (
	"context"
	"fmt"
	"log/slog"
	"net"
	"strconv"

	"github.com/google/uuid"
	"github.com/qdrant/go-client/qdrant"
	"google.golang.org/grpc"

	"github.com/harshitMehrag/snowflake-langgraph-agent/pkg/utils"
	"github.com/harshitMehrag/snowflake-langgraph-agent/pkg/vector"
)

const (
	// DefaultCollectionName is the default collection for handbook chunks.
	DefaultCollectionName = "handbook"

	// DefaultPort is the Qdrant gRPC port.
	DefaultPort = 6334
)

// Driver implements vector.Driver using Qdrant.
type Driver struct {
	client     *qdrant.Client
	collection string
	logger     *slog.Logger
}

// Config holds configuration for the Qdrant driver.
type Config struct {
	// Target is the Qdrant gRPC address, e.g. "localhost:6334".
	Target string

	// CollectionName is the name of the collection to use.
	// Defaults to DefaultCollectionName if empty.
	CollectionName string

	// Dimensions is the embedding vector size, required when the collection
	// does not exist yet.
	Dimensions uint
}

// NewDriver creates a new Qdrant vector driver and ensures the collection
// exists with cosine distance.
func NewDriver(ctx context.Context, c Config, logger *slog.Logger) (*Driver, error) {
	if c.Target == "" {
		return nil, fmt.Errorf("qdrant target is required")
	}

	host, port, err := splitTarget(c.Target)
	if err != nil {
		return nil, err
	}

	collection := c.CollectionName
	if collection == "" {
		collection = DefaultCollectionName
	}

	client, err := qdrant.NewClient(&qdrant.Config{
		Host: host,
		Port: port,
		GrpcOptions: []grpc.DialOption{
			grpc.WithUserAgent("dataagent/" + utils.Version),
		},
	})
	if err != nil {
		return nil, fmt.Errorf("%w: connecting to qdrant: %v", vector.ErrConnection, err)
	}

	exists, err := client.CollectionExists(ctx, collection)
	if err != nil {
		client.Close()
		return nil, fmt.Errorf("%w: checking collection %q: %v", vector.ErrConnection, collection, err)
	}

	if !exists {
		if c.Dimensions == 0 {
			client.Close()
			return nil, fmt.Errorf("qdrant embedding dimensions cannot be 0 when creating collection %q", collection)
		}
		err = client.CreateCollection(ctx, &qdrant.CreateCollection{
			CollectionName: collection,
			VectorsConfig: qdrant.NewVectorsConfig(&qdrant.VectorParams{
				Size:     uint64(c.Dimensions),
				Distance: qdrant.Distance_Cosine,
			}),
		})
		if err != nil {
			client.Close()
			return nil, fmt.Errorf("%w: creating collection %q: %v", vector.ErrConnection, collection, err)
		}
	}

	logger.Info("connected to qdrant",
		"target", c.Target,
		"collection", collection,
	)

	return &Driver{
		client:     client,
		collection: collection,
		logger:     logger,
	}, nil
}

func splitTarget(target string) (string, int, error) {
	host, portStr, err := net.SplitHostPort(target)
	if err != nil {
		// Bare host, use the default gRPC port.
		return target, DefaultPort, nil
	}

	port, err := strconv.Atoi(portStr)
	if err != nil {
		return "", 0, fmt.Errorf("invalid qdrant port %q: %w", portStr, err)
	}

	return host, port, nil
}

// pointID derives a stable UUID point ID from a chunk ID. Qdrant point IDs
// must be UUIDs or integers, so arbitrary chunk IDs live in the payload.
func pointID(chunkID string) *qdrant.PointId {
	return qdrant.NewID(uuid.NewSHA1(uuid.NameSpaceOID, []byte(chunkID)).String())
}

// Add stores documents with their embeddings, updating on ID collision.
func (d *Driver) Add(ctx context.Context, docs []vector.Document) error {
	if len(docs) == 0 {
		return nil
	}

	points := make([]*qdrant.PointStruct, len(docs))
	for i, doc := range docs {
		points[i] = &qdrant.PointStruct{
			Id:      pointID(doc.ID),
			Vectors: qdrant.NewVectorsDense(doc.Embedding),
			Payload: qdrant.NewValueMap(map[string]any{
				"chunk_id": doc.ID,
				"source":   doc.Source,
				"text":     doc.Text,
			}),
		}
	}

	_, err := d.client.Upsert(ctx, &qdrant.UpsertPoints{
		CollectionName: d.collection,
		Points:         points,
	})
	if err != nil {
		return fmt.Errorf("upserting points: %w", err)
	}

	d.logger.Debug("added chunks to qdrant", "count", len(docs))

	return nil
}

// Query finds the topK most similar documents to the given embedding.
func (d *Driver) Query(ctx context.Context, embedding []float32, topK int) ([]vector.QueryResult, error) {
	if topK <= 0 {
		topK = 3
	}

	limit := uint64(topK)
	points, err := d.client.Query(ctx, &qdrant.QueryPoints{
		CollectionName: d.collection,
		Query:          qdrant.NewQueryDense(embedding),
		Limit:          &limit,
		WithPayload:    qdrant.NewWithPayload(true),
	})
	if err != nil {
		return nil, fmt.Errorf("querying points: %w", err)
	}

	results := make([]vector.QueryResult, 0, len(points))
	for _, point := range points {
		results = append(results, vector.QueryResult{
			Document: documentFromPayload(point.Payload),
			Score:    point.Score,
		})
	}

	d.logger.Debug("queried qdrant", "results", len(results))

	return results, nil
}

// Get retrieves documents by their IDs.
func (d *Driver) Get(ctx context.Context, ids []string) ([]vector.Document, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	pointIDs := make([]*qdrant.PointId, len(ids))
	for i, id := range ids {
		pointIDs[i] = pointID(id)
	}

	withVectors := qdrant.NewWithVectors(true)
	points, err := d.client.Get(ctx, &qdrant.GetPoints{
		CollectionName: d.collection,
		Ids:            pointIDs,
		WithPayload:    qdrant.NewWithPayload(true),
		WithVectors:    withVectors,
	})
	if err != nil {
		return nil, fmt.Errorf("getting points: %w", err)
	}

	docs := make([]vector.Document, 0, len(points))
	for _, point := range points {
		doc := documentFromPayload(point.Payload)
		if dense := point.Vectors.GetVector(); dense != nil {
			doc.Embedding = dense.Data
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

	pointIDs := make([]*qdrant.PointId, len(ids))
	for i, id := range ids {
		pointIDs[i] = pointID(id)
	}

	_, err := d.client.Delete(ctx, &qdrant.DeletePoints{
		CollectionName: d.collection,
		Points:         qdrant.NewPointsSelector(pointIDs...),
	})
	if err != nil {
		return fmt.Errorf("deleting points: %w", err)
	}

	return nil
}

// Close releases resources held by the driver.
func (d *Driver) Close() error {
	return d.client.Close()
}

func documentFromPayload(payload map[string]*qdrant.Value) vector.Document {
	doc := vector.Document{}
	if v, ok := payload["chunk_id"]; ok {
		doc.ID = v.GetStringValue()
	}
	if v, ok := payload["source"]; ok {
		doc.Source = v.GetStringValue()
	}
	if v, ok := payload["text"]; ok {
		doc.Text = v.GetStringValue()
	}
	return doc
}

// Ensure Driver implements vector.Driver
var _ vector.Driver = (*Driver)(nil)
