package database

import (
	"context"
	"errors"
	"log"
	"sync"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
	"golang.org/x/sync/singleflight"
)

const (
	QuestionnaireCollection = "questionnaires"
	SubmissionCollection    = "submissions"
)

// Provider hands out the shared database handle.
type Provider interface {
	Database(ctx context.Context) (*mongo.Database, error)
}

// Mongo is the process-wide connection. It connects on first use and reuses the
// client afterwards; concurrent first callers share a single connect attempt.
// A failed attempt is not cached, so the next caller retries.
type Mongo struct {
	uri    string
	dbName string

	group singleflight.Group
	mu    sync.RWMutex
	db    *mongo.Database
}

func NewMongo(uri, dbName string) (*Mongo, error) {
	if uri == "" {
		return nil, errors.New("mongo uri is required")
	}
	return &Mongo{uri: uri, dbName: dbName}, nil
}

func (m *Mongo) Database(ctx context.Context) (*mongo.Database, error) {
	m.mu.RLock()
	db := m.db
	m.mu.RUnlock()
	if db != nil {
		return db, nil
	}

	v, err, _ := m.group.Do("connect", func() (interface{}, error) {
		m.mu.RLock()
		existing := m.db
		m.mu.RUnlock()
		if existing != nil {
			return existing, nil
		}

		connected, err := m.connect(ctx)
		if err != nil {
			return nil, err
		}
		m.mu.Lock()
		m.db = connected
		m.mu.Unlock()
		return connected, nil
	})
	if err != nil {
		return nil, err
	}
	return v.(*mongo.Database), nil
}

func (m *Mongo) connect(ctx context.Context) (*mongo.Database, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(m.uri))
	if err != nil {
		log.Println("❌ Failed to connect to MongoDB:", err)
		return nil, err
	}
	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		log.Println("❌ MongoDB ping failed:", err)
		_ = client.Disconnect(context.Background())
		return nil, err
	}

	log.Printf("✅ MongoDB connected successfully (db=%s)", m.dbName)
	return client.Database(m.dbName), nil
}
