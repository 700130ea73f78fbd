// Package qdrant provides a ScanIndex implementation using Qdrant.
package qdrant

import (
	"context"
	"fmt"
	"time"

	pb "github.com/qdrant/go-client/qdrant"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/metadata"

	"github.com/ersonp/scamguard/internal/domain/entities"
	"github.com/ersonp/scamguard/internal/infrastructure/config"
)

// Payload keys stored alongside each scan vector.
const (
	payloadInputText  = "inputText"
	payloadResult     = "result"
	payloadConfidence = "confidence"
	payloadTimestamp  = "timestamp"
)

// Repository implements the ScanIndex interface using Qdrant.
type Repository struct {
	client     pb.CollectionsClient
	points     pb.PointsClient
	collection string
	conn       *grpc.ClientConn
}

// NewRepository creates a new Qdrant repository.
func NewRepository(cfg config.IndexConfig) (*Repository, error) {
	addr := fmt.Sprintf("%s:%d", cfg.Host, cfg.Port)

	opts := []grpc.DialOption{grpc.WithTransportCredentials(insecure.NewCredentials())}
	if cfg.APIKey != "" {
		opts = append(opts, grpc.WithUnaryInterceptor(apiKeyInterceptor(cfg.APIKey)))
	}

	conn, err := grpc.NewClient(addr, opts...)
	if err != nil {
		return nil, fmt.Errorf("connecting to qdrant: %w", err)
	}

	return &Repository{
		client:     pb.NewCollectionsClient(conn),
		points:     pb.NewPointsClient(conn),
		collection: cfg.Collection,
		conn:       conn,
	}, nil
}

func apiKeyInterceptor(key string) grpc.UnaryClientInterceptor {
	return func(ctx context.Context, method string, req, reply any, cc *grpc.ClientConn, invoker grpc.UnaryInvoker, opts ...grpc.CallOption) error {
		ctx = metadata.AppendToOutgoingContext(ctx, "api-key", key)
		return invoker(ctx, method, req, reply, cc, opts...)
	}
}

// Close closes the gRPC connection.
func (r *Repository) Close() error {
	if r.conn != nil {
		return r.conn.Close()
	}
	return nil
}

// EnsureCollection creates the collection if it doesn't exist.
func (r *Repository) EnsureCollection(ctx context.Context, vectorSize uint64) error {
	_, err := r.client.Get(ctx, &pb.GetCollectionInfoRequest{
		CollectionName: r.collection,
	})
	if err == nil {
		return nil
	}

	_, err = r.client.Create(ctx, &pb.CreateCollection{
		CollectionName: r.collection,
		VectorsConfig: &pb.VectorsConfig{
			Config: &pb.VectorsConfig_Params{
				Params: &pb.VectorParams{
					Size:     vectorSize,
					Distance: pb.Distance_Cosine,
				},
			},
		},
	})
	if err != nil {
		return fmt.Errorf("creating collection: %w", err)
	}

	return nil
}

// DeleteCollection drops the whole collection.
func (r *Repository) DeleteCollection(ctx context.Context) error {
	_, err := r.client.Delete(ctx, &pb.DeleteCollection{
		CollectionName: r.collection,
	})
	if err != nil {
		return fmt.Errorf("deleting collection: %w", err)
	}
	return nil
}

// Save stores a scan with its embedding. The scan ID is used as the point ID.
func (r *Repository) Save(ctx context.Context, scan entities.ScanRecord, embedding []float32) error {
	_, err := r.points.Upsert(ctx, &pb.UpsertPoints{
		CollectionName: r.collection,
		Wait:           pb.PtrOf(true),
		Points:         []*pb.PointStruct{scanToPoint(scan, embedding)},
	})
	if err != nil {
		return fmt.Errorf("upserting points: %w", err)
	}

	return nil
}

// Search performs a semantic search and returns similar scans, closest first.
func (r *Repository) Search(ctx context.Context, embedding []float32, limit int) ([]entities.SimilarScan, error) {
	resp, err := r.points.Search(ctx, &pb.SearchPoints{
		CollectionName: r.collection,
		Vector:         embedding,
		Limit:          uint64(limit),
		WithPayload: &pb.WithPayloadSelector{
			SelectorOptions: &pb.WithPayloadSelector_Enable{Enable: true},
		},
	})
	if err != nil {
		return nil, fmt.Errorf("searching points: %w", err)
	}

	return scoredPointsToScans(resp.Result), nil
}

// Delete removes the scans with the given IDs.
func (r *Repository) Delete(ctx context.Context, ids []string) error {
	if len(ids) == 0 {
		return nil
	}

	_, err := r.points.Delete(ctx, &pb.DeletePoints{
		CollectionName: r.collection,
		Wait:           pb.PtrOf(true),
		Points:         idsSelector(ids),
	})
	if err != nil {
		return fmt.Errorf("deleting points: %w", err)
	}

	return nil
}

// DeleteAll removes all indexed scans.
func (r *Repository) DeleteAll(ctx context.Context) error {
	_, err := r.points.Delete(ctx, &pb.DeletePoints{
		CollectionName: r.collection,
		Wait:           pb.PtrOf(true),
		Points: &pb.PointsSelector{
			PointsSelectorOneOf: &pb.PointsSelector_Filter{
				Filter: &pb.Filter{},
			},
		},
	})
	if err != nil {
		return fmt.Errorf("deleting all points: %w", err)
	}

	return nil
}

// Count returns the total number of indexed scans.
func (r *Repository) Count(ctx context.Context) (uint64, error) {
	resp, err := r.client.Get(ctx, &pb.GetCollectionInfoRequest{
		CollectionName: r.collection,
	})
	if err != nil {
		return 0, fmt.Errorf("getting collection info: %w", err)
	}

	if resp.Result.PointsCount == nil {
		return 0, nil
	}

	return *resp.Result.PointsCount, nil
}

// idsSelector selects points by scan ID.
func idsSelector(ids []string) *pb.PointsSelector {
	pointIDs := make([]*pb.PointId, len(ids))
	for i, id := range ids {
		pointIDs[i] = &pb.PointId{PointIdOptions: &pb.PointId_Uuid{Uuid: id}}
	}
	return &pb.PointsSelector{
		PointsSelectorOneOf: &pb.PointsSelector_Points{
			Points: &pb.PointsIdsList{Ids: pointIDs},
		},
	}
}

// scanToPoint converts a scan record to a Qdrant point.
func scanToPoint(scan entities.ScanRecord, embedding []float32) *pb.PointStruct {
	return &pb.PointStruct{
		Id: &pb.PointId{
			PointIdOptions: &pb.PointId_Uuid{Uuid: scan.ID},
		},
		Vectors: &pb.Vectors{
			VectorsOptions: &pb.Vectors_Vector{
				Vector: &pb.Vector{Data: embedding},
			},
		},
		Payload: map[string]*pb.Value{
			payloadInputText:  {Kind: &pb.Value_StringValue{StringValue: scan.InputText}},
			payloadResult:     {Kind: &pb.Value_StringValue{StringValue: string(scan.Verdict)}},
			payloadConfidence: {Kind: &pb.Value_DoubleValue{DoubleValue: scan.Confidence}},
			payloadTimestamp:  {Kind: &pb.Value_StringValue{StringValue: scan.Timestamp.UTC().Format(time.RFC3339Nano)}},
		},
	}
}

// scoredPointsToScans converts scored points to similar scans.
// Points with an unknown verdict keep an empty Verdict.
func scoredPointsToScans(points []*pb.ScoredPoint) []entities.SimilarScan {
	scans := make([]entities.SimilarScan, 0, len(points))

	for _, point := range points {
		payload := point.GetPayload()

		verdict, _ := entities.ParseVerdict(getStringValue(payload, payloadResult))
		ts, _ := time.Parse(time.RFC3339Nano, getStringValue(payload, payloadTimestamp))

		scans = append(scans, entities.SimilarScan{
			ID:         point.GetId().GetUuid(),
			InputText:  getStringValue(payload, payloadInputText),
			Verdict:    verdict,
			Confidence: getDoubleValue(payload, payloadConfidence),
			Timestamp:  ts,
			Score:      point.GetScore(),
		})
	}

	return scans
}

// Helper functions for payload extraction.
func getStringValue(payload map[string]*pb.Value, key string) string {
	if v, ok := payload[key]; ok {
		return v.GetStringValue()
	}
	return ""
}

func getDoubleValue(payload map[string]*pb.Value, key string) float64 {
	if v, ok := payload[key]; ok {
		return v.GetDoubleValue()
	}
	return 0
}
