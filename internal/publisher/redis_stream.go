// Package publisher emits dataset lifecycle events to Redis streams so
// downstream consumers can react to regenerations.
package publisher

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"github.com/redis/go-redis/v9"
)

const datasetStream = "footylab.dataset.generated"

// RedisStreamPublisher publishes events to Redis streams
type RedisStreamPublisher struct {
	client *redis.Client
}

// NewRedisStreamPublisher creates a new Redis stream publisher from an
// existing client.
func NewRedisStreamPublisher(client *redis.Client) *RedisStreamPublisher {
	return &RedisStreamPublisher{
		client: client,
	}
}

// DatasetEvent describes one completed dataset generation.
type DatasetEvent struct {
	JobID      string `json:"job_id"`
	RunID      string `json:"run_id"`
	Season     string `json:"season"`
	Seed       int64  `json:"seed"`
	NumClubs   int    `json:"num_clubs"`
	NumPlayers int    `json:"num_players"`
}

// PublishDatasetGenerated publishes a dataset-generated event to the stream.
func (rsp *RedisStreamPublisher) PublishDatasetGenerated(ctx context.Context, event DatasetEvent) error {
	data, err := json.Marshal(event)
	if err != nil {
		return err
	}

	return rsp.client.XAdd(ctx, &redis.XAddArgs{
		Stream: datasetStream,
		Values: map[string]interface{}{
			"data":      string(data),
			"timestamp": time.Now().Unix(),
		},
	}).Err()
}

// DatasetGenerated publishes the regeneration event from the job worker.
func (rsp *RedisStreamPublisher) DatasetGenerated(jobID, runID, season string, seed int64, numClubs, numPlayers int) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	event := DatasetEvent{
		JobID:      jobID,
		RunID:      runID,
		Season:     season,
		Seed:       seed,
		NumClubs:   numClubs,
		NumPlayers: numPlayers,
	}
	if err := rsp.PublishDatasetGenerated(ctx, event); err != nil {
		log.Printf("publishing dataset event for run %s: %v", runID, err)
	}
}
