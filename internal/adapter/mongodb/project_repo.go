package mongodb

import (
	"context"
	"time"

	"portfolio/internal/domain"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

type projectDoc struct {
	ID           bson.ObjectID `bson:"_id,omitempty"`
	Title        string        `bson:"title"`
	Description  string        `bson:"description"`
	Technologies []string      `bson:"technologies"`
	ImageURL     string        `bson:"imageUrl"`
	LiveURL      string        `bson:"liveUrl"`
	GitHubURL    string        `bson:"githubUrl"`
	CreatedAt    time.Time     `bson:"createdAt"`
}

func (d *projectDoc) toDomain() domain.Project {
	techs := d.Technologies
	if techs == nil {
		techs = []string{}
	}
	return domain.Project{
		ID:           d.ID.Hex(),
		Title:        d.Title,
		Description:  d.Description,
		Technologies: techs,
		ImageURL:     d.ImageURL,
		LiveURL:      d.LiveURL,
		GitHubURL:    d.GitHubURL,
		CreatedAt:    d.CreatedAt,
	}
}

// ProjectRepo implements domain.ProjectRepository on the projects collection.
type ProjectRepo struct {
	coll *mongo.Collection
}

// NewProjectRepo wraps a Store as a ProjectRepository.
func NewProjectRepo(s *Store) *ProjectRepo {
	return &ProjectRepo{coll: s.db.Collection("projects")}
}

// List returns all projects, newest first.
func (r *ProjectRepo) List(ctx context.Context) ([]domain.Project, error) {
	cursor, err := r.coll.Find(ctx, bson.M{},
		options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}}))
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var docs []projectDoc
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, err
	}

	out := make([]domain.Project, 0, len(docs))
	for i := range docs {
		out = append(out, docs[i].toDomain())
	}
	return out, nil
}

// Create stores a new project.
func (r *ProjectRepo) Create(ctx context.Context, p domain.Project) (*domain.Project, error) {
	doc := projectDoc{
		Title:        p.Title,
		Description:  p.Description,
		Technologies: p.Technologies,
		ImageURL:     p.ImageURL,
		LiveURL:      p.LiveURL,
		GitHubURL:    p.GitHubURL,
		CreatedAt:    time.Now().UTC(),
	}
	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		return nil, err
	}
	if id, ok := res.InsertedID.(bson.ObjectID); ok {
		doc.ID = id
	}
	created := doc.toDomain()
	return &created, nil
}

// Delete removes a project by hex id, reporting whether it existed. A
// malformed id matches nothing.
func (r *ProjectRepo) Delete(ctx context.Context, id string) (bool, error) {
	oid, err := bson.ObjectIDFromHex(id)
	if err != nil {
		return false, nil
	}
	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return false, err
	}
	return res.DeletedCount > 0, nil
}
