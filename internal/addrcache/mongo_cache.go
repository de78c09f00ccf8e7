package addrcache

import (
	"context"
	"fmt"
	"time"

	lru "github.com/hashicorp/golang-lru/v2"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
)

// mongoDoc is the document shape stored in the address_cache collection,
// keyed by the category-signature cache key rather than a raw-text
// fingerprint. Skeleton storage has no text to hash, so the key itself
// is the natural unique index.
type mongoDoc struct {
	Key         string    `bson:"key"`
	Entry       entryDoc  `bson:"entry"`
	CreatedAt   time.Time `bson:"created_at"`
	AccessCount int64     `bson:"access_count"`
}

// MongoCache is the durable skeleton tier: an L1 in-process LRU in front
// of a MongoDB collection, looked up L1 first and then the collection,
// storing bare tree skeletons keyed by category signature.
type MongoCache struct {
	collection *mongo.Collection
	l1         *lru.Cache[string, Entry]
	logger     *zap.Logger

	hits   int64
	misses int64
}

// NewMongoCache builds a MongoCache backed by db's address_cache
// collection, creating its key index if absent.
func NewMongoCache(db *mongo.Database, l1Size int, logger *zap.Logger) (*MongoCache, error) {
	l1, err := lru.New[string, Entry](l1Size)
	if err != nil {
		return nil, fmt.Errorf("create l1 lru: %w", err)
	}

	collection := db.Collection("address_cache")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	_, err = collection.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{bson.E{Key: "key", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		logger.Warn("could not create address_cache index", zap.Error(err))
	}

	return &MongoCache{collection: collection, l1: l1, logger: logger}, nil
}

func (c *MongoCache) Get(ctx context.Context, key string) (Entry, bool, error) {
	if e, ok := c.l1.Get(key); ok {
		c.hits++
		return e, true, nil
	}

	var doc mongoDoc
	err := c.collection.FindOne(ctx, bson.M{"key": key}).Decode(&doc)
	if err == mongo.ErrNoDocuments {
		c.misses++
		return Entry{}, false, nil
	}
	if err != nil {
		return Entry{}, false, fmt.Errorf("query address_cache: %w", err)
	}

	c.hits++
	entry := fromEntryDoc(doc.Entry)
	c.l1.Add(key, entry)
	go c.bumpAccessCount(key)
	return entry, true, nil
}

func (c *MongoCache) Set(ctx context.Context, key string, entry Entry) error {
	c.l1.Add(key, entry)

	doc := mongoDoc{Key: key, Entry: toEntryDoc(entry), CreatedAt: time.Now(), AccessCount: 1}
	opts := options.Replace().SetUpsert(true)
	_, err := c.collection.ReplaceOne(ctx, bson.M{"key": key}, doc, opts)
	if err != nil {
		c.logger.Error("mongo skeleton upsert failed", zap.Error(err), zap.String("key", key))
		return fmt.Errorf("upsert address_cache: %w", err)
	}
	return nil
}

func (c *MongoCache) bumpAccessCount(key string) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	_, err := c.collection.UpdateOne(ctx, bson.M{"key": key}, bson.M{"$inc": bson.M{"access_count": 1}})
	if err != nil {
		c.logger.Warn("access count update failed", zap.Error(err))
	}
}

// Stats reports hit/miss counters accumulated so far.
func (c *MongoCache) Stats() (hits, misses int64) { return c.hits, c.misses }

// WarmUp loads the most-accessed skeletons from MongoDB into the L1 LRU.
func (c *MongoCache) WarmUp(ctx context.Context, limit int) error {
	opts := options.Find().SetSort(bson.D{bson.E{Key: "access_count", Value: -1}}).SetLimit(int64(limit))
	cursor, err := c.collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return fmt.Errorf("warm up address_cache: %w", err)
	}
	defer cursor.Close(ctx)

	loaded := 0
	for cursor.Next(ctx) {
		var doc mongoDoc
		if err := cursor.Decode(&doc); err != nil {
			c.logger.Warn("warm up decode failed", zap.Error(err))
			continue
		}
		c.l1.Add(doc.Key, fromEntryDoc(doc.Entry))
		loaded++
	}
	c.logger.Info("address cache warm up done", zap.Int("loaded", loaded))
	return nil
}

var _ Cache = (*MongoCache)(nil)
