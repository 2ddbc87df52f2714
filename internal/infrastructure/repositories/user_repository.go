package repositories

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/Piyushpg25/Authentication-system/domain"
)

// UserRepositoryImpl implements domain.UserRepository on a MongoDB
// collection.
type UserRepositoryImpl struct {
	col *mongo.Collection
}

// dbUser is the persisted shape of a user document. OTP expiry fields are
// stored as a single numeric type (epoch milliseconds).
type dbUser struct {
	ID                 primitive.ObjectID `bson:"_id,omitempty"`
	Name               string             `bson:"name"`
	Email              string             `bson:"email"`
	PasswordHash       string             `bson:"password"`
	IsVerified         bool               `bson:"is_verified"`
	VerifyOTP          string             `bson:"verify_otp"`
	VerifyOTPExpiresAt int64              `bson:"verify_otp_expires_at"`
	ResetOTP           string             `bson:"reset_otp"`
	ResetOTPExpiresAt  int64              `bson:"reset_otp_expires_at"`
	CreatedAt          time.Time          `bson:"created_at"`
	UpdatedAt          time.Time          `bson:"updated_at"`
}

// NewUserRepository creates a new user repository on the users collection.
func NewUserRepository(db *mongo.Database) domain.UserRepository {
	return &UserRepositoryImpl{col: db.Collection("users")}
}

// EnsureUserIndexes creates the unique email index. Uniqueness of the
// email attribute is enforced here, not in application code.
func EnsureUserIndexes(ctx context.Context, db *mongo.Database) error {
	_, err := db.Collection("users").Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	return err
}

// Create implements domain.UserRepository
func (r *UserRepositoryImpl) Create(ctx context.Context, user *domain.User) error {
	doc := domainToDB(user)
	doc.CreatedAt = time.Now()
	doc.UpdatedAt = doc.CreatedAt

	res, err := r.col.InsertOne(ctx, doc)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return domain.ErrUserAlreadyExists
		}
		return err
	}

	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		user.ID = oid.Hex()
	}
	user.CreatedAt = doc.CreatedAt
	user.UpdatedAt = doc.UpdatedAt
	return nil
}

// FindByEmail implements domain.UserRepository
func (r *UserRepositoryImpl) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	var doc dbUser
	err := r.col.FindOne(ctx, bson.M{"email": email}).Decode(&doc)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, domain.ErrUserNotFound
		}
		return nil, err
	}
	return dbToDomain(&doc), nil
}

// FindByID implements domain.UserRepository
func (r *UserRepositoryImpl) FindByID(ctx context.Context, id string) (*domain.User, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrUserNotFound
	}

	var doc dbUser
	err = r.col.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, domain.ErrUserNotFound
		}
		return nil, err
	}
	return dbToDomain(&doc), nil
}

// Update implements domain.UserRepository. The whole document is replaced;
// concurrent updates to the same account are last-write-wins.
func (r *UserRepositoryImpl) Update(ctx context.Context, user *domain.User) error {
	oid, err := primitive.ObjectIDFromHex(user.ID)
	if err != nil {
		return domain.ErrUserNotFound
	}

	doc := domainToDB(user)
	doc.ID = oid
	doc.UpdatedAt = time.Now()

	res, err := r.col.ReplaceOne(ctx, bson.M{"_id": oid}, doc)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return domain.ErrUserNotFound
	}
	user.UpdatedAt = doc.UpdatedAt
	return nil
}

func domainToDB(user *domain.User) *dbUser {
	return &dbUser{
		Name:               user.Name,
		Email:              user.Email,
		PasswordHash:       user.PasswordHash,
		IsVerified:         user.IsVerified,
		VerifyOTP:          user.VerifyOTP,
		VerifyOTPExpiresAt: user.VerifyOTPExpiresAt,
		ResetOTP:           user.ResetOTP,
		ResetOTPExpiresAt:  user.ResetOTPExpiresAt,
		CreatedAt:          user.CreatedAt,
		UpdatedAt:          user.UpdatedAt,
	}
}

func dbToDomain(doc *dbUser) *domain.User {
	return &domain.User{
		ID:                 doc.ID.Hex(),
		Name:               doc.Name,
		Email:              doc.Email,
		PasswordHash:       doc.PasswordHash,
		IsVerified:         doc.IsVerified,
		VerifyOTP:          doc.VerifyOTP,
		VerifyOTPExpiresAt: doc.VerifyOTPExpiresAt,
		ResetOTP:           doc.ResetOTP,
		ResetOTPExpiresAt:  doc.ResetOTPExpiresAt,
		CreatedAt:          doc.CreatedAt,
		UpdatedAt:          doc.UpdatedAt,
	}
}
