package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"github.com/notekeeper/notekeeper/internal/apperr"
	"github.com/notekeeper/notekeeper/internal/model"
)

// Collection names.
const (
	notesCollection = "notes"
	usersCollection = "users"
)

// MongoStore is the MongoDB backend.
type MongoStore struct {
	client *mongo.Client
	notes  *mongo.Collection
	users  *mongo.Collection
}

type noteDocument struct {
	ID        primitive.ObjectID `bson:"_id"`
	Content   string             `bson:"content"`
	Important bool               `bson:"important"`
	Date      time.Time          `bson:"date"`
}

func (d *noteDocument) toNote() *model.Note {
	return &model.Note{
		ID:        d.ID.Hex(),
		Content:   d.Content,
		Important: d.Important,
		Date:      d.Date.UTC(),
	}
}

type userDocument struct {
	ID           primitive.ObjectID   `bson:"_id"`
	Username     string               `bson:"username"`
	Name         string               `bson:"name"`
	PasswordHash string               `bson:"passwordHash"`
	Notes        []primitive.ObjectID `bson:"notes"`
}

func (d *userDocument) toUser() *model.User {
	ids := make([]string, len(d.Notes))
	for i, oid := range d.Notes {
		ids[i] = oid.Hex()
	}
	return &model.User{
		ID:           d.ID.Hex(),
		Username:     d.Username,
		Name:         d.Name,
		PasswordHash: d.PasswordHash,
		NoteIDs:      ids,
	}
}

// NewMongo connects to uri, verifies the connection and ensures indexes.
func NewMongo(ctx context.Context, uri, database string) (*MongoStore, error) {
	clientOpts := options.Client().
		ApplyURI(uri).
		SetConnectTimeout(10 * time.Second).
		SetServerSelectionTimeout(10 * time.Second).
		SetMinPoolSize(1).
		SetMaxPoolSize(10)

	client, err := mongo.Connect(ctx, clientOpts)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to MongoDB: %w", err)
	}

	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		_ = client.Disconnect(ctx)
		return nil, fmt.Errorf("failed to ping MongoDB: %w", err)
	}

	db := client.Database(database)
	s := &MongoStore{
		client: client,
		notes:  db.Collection(notesCollection),
		users:  db.Collection(usersCollection),
	}

	_, err = s.users.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "username", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		_ = client.Disconnect(ctx)
		return nil, fmt.Errorf("failed to create username index: %w", err)
	}

	return s, nil
}

// Driver returns DriverMongo.
func (s *MongoStore) Driver() string { return DriverMongo }

// Ping checks MongoDB connectivity.
func (s *MongoStore) Ping(ctx context.Context) error {
	return s.client.Ping(ctx, readpref.Primary())
}

// Close disconnects the client.
func (s *MongoStore) Close(ctx context.Context) error {
	return s.client.Disconnect(ctx)
}

// ListNotes returns every note in natural order.
func (s *MongoStore) ListNotes(ctx context.Context) ([]*model.Note, error) {
	cursor, err := s.notes.Find(ctx, bson.D{})
	if err != nil {
		return nil, fmt.Errorf("failed to list notes: %w", err)
	}

	var docs []noteDocument
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("failed to decode notes: %w", err)
	}

	notes := make([]*model.Note, len(docs))
	for i := range docs {
		notes[i] = docs[i].toNote()
	}
	return notes, nil
}

// GetNote returns the note with the given id.
func (s *MongoStore) GetNote(ctx context.Context, id string) (*model.Note, error) {
	oid, err := parseObjectID(id)
	if err != nil {
		return nil, err
	}

	var doc noteDocument
	err = s.notes.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperr.NewNotFound("note", id)
		}
		return nil, fmt.Errorf("failed to get note: %w", err)
	}

	return doc.toNote(), nil
}

// CreateNote inserts a new note document.
func (s *MongoStore) CreateNote(ctx context.Context, content string, important bool) (*model.Note, error) {
	doc := noteDocument{
		ID:        primitive.NewObjectID(),
		Content:   content,
		Important: important,
		Date:      timestamp(),
	}

	if _, err := s.notes.InsertOne(ctx, doc); err != nil {
		return nil, fmt.Errorf("failed to create note: %w", err)
	}

	return doc.toNote(), nil
}

// UpdateNote sets the provided fields and returns the updated document.
func (s *MongoStore) UpdateNote(ctx context.Context, id string, update model.NoteUpdate) (*model.Note, error) {
	oid, err := parseObjectID(id)
	if err != nil {
		return nil, err
	}

	if update.IsEmpty() {
		return s.GetNote(ctx, id)
	}

	set := bson.M{}
	if update.Content != nil {
		set["content"] = *update.Content
	}
	if update.Important != nil {
		set["important"] = *update.Important
	}

	var doc noteDocument
	err = s.notes.FindOneAndUpdate(ctx,
		bson.M{"_id": oid},
		bson.M{"$set": set},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperr.NewNotFound("note", id)
		}
		return nil, fmt.Errorf("failed to update note: %w", err)
	}

	return doc.toNote(), nil
}

// DeleteNote removes the note if present.
func (s *MongoStore) DeleteNote(ctx context.Context, id string) error {
	oid, err := parseObjectID(id)
	if err != nil {
		return err
	}

	if _, err := s.notes.DeleteOne(ctx, bson.M{"_id": oid}); err != nil {
		return fmt.Errorf("failed to delete note: %w", err)
	}
	return nil
}

// DeleteAllNotes empties the notes collection.
func (s *MongoStore) DeleteAllNotes(ctx context.Context) (int64, error) {
	result, err := s.notes.DeleteMany(ctx, bson.D{})
	if err != nil {
		return 0, fmt.Errorf("failed to delete notes: %w", err)
	}
	return result.DeletedCount, nil
}

// ListUsers returns every user.
func (s *MongoStore) ListUsers(ctx context.Context) ([]*model.User, error) {
	cursor, err := s.users.Find(ctx, bson.D{})
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}

	var docs []userDocument
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("failed to decode users: %w", err)
	}

	users := make([]*model.User, len(docs))
	for i := range docs {
		users[i] = docs[i].toUser()
	}
	return users, nil
}

// CreateUser inserts user; the unique index rejects duplicate usernames.
func (s *MongoStore) CreateUser(ctx context.Context, user *model.User) error {
	notes := make([]primitive.ObjectID, 0, len(user.NoteIDs))
	for _, id := range user.NoteIDs {
		oid, err := parseObjectID(id)
		if err != nil {
			return err
		}
		notes = append(notes, oid)
	}

	doc := userDocument{
		ID:           primitive.NewObjectID(),
		Username:     user.Username,
		Name:         user.Name,
		PasswordHash: user.PasswordHash,
		Notes:        notes,
	}

	if _, err := s.users.InsertOne(ctx, doc); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return usernameTaken(user.Username)
		}
		return fmt.Errorf("failed to create user: %w", err)
	}

	user.ID = doc.ID.Hex()
	return nil
}

// DeleteAllUsers empties the users collection.
func (s *MongoStore) DeleteAllUsers(ctx context.Context) (int64, error) {
	result, err := s.users.DeleteMany(ctx, bson.D{})
	if err != nil {
		return 0, fmt.Errorf("failed to delete users: %w", err)
	}
	return result.DeletedCount, nil
}

// Client returns the underlying MongoDB client.
// Use sparingly - prefer adding methods to MongoStore.
func (s *MongoStore) Client() *mongo.Client {
	return s.client
}
