package service

import (
	"bytes"
	"context"
	"crypto/subtle"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/rs/zerolog"
	"github.com/santhosh-tekuri/jsonschema/v5"

	"github.com/noah-isme/joineazy-go-api/internal/dto"
	"github.com/noah-isme/joineazy-go-api/internal/repository"
)

var (
	// ErrSeedDisabled indicates the seeding tools are disabled by configuration.
	ErrSeedDisabled = errors.New("seeding is disabled")
	// ErrSeedUnauthorized indicates the provided token is invalid.
	ErrSeedUnauthorized = errors.New("invalid seed token")
	// ErrSeedInvalid indicates the payload failed schema validation.
	ErrSeedInvalid = errors.New("seed payload rejected")
)

//go:embed seed_schema.json
var seedSchemaJSON []byte

// SeedService loads a demo dataset into the four collections. Payloads are
// validated against the embedded JSON schema before any write happens.
type SeedService interface {
	Load(ctx context.Context, token string, payload []byte) (dto.SeedSummary, error)
}

type seedService struct {
	users       repository.UserRepository
	courses     repository.CourseRepository
	assignments repository.AssignmentRepository
	groups      repository.GroupRepository
	schema      *jsonschema.Schema
	enabled     bool
	token       string
	logger      zerolog.Logger
}

// NewSeedService constructs a seeding service.
func NewSeedService(users repository.UserRepository, courses repository.CourseRepository, assignments repository.AssignmentRepository, groups repository.GroupRepository, enabled bool, token string, logger zerolog.Logger) (SeedService, error) {
	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource("seed_schema.json", bytes.NewReader(seedSchemaJSON)); err != nil {
		return nil, fmt.Errorf("failed to register seed schema: %w", err)
	}

	schema, err := compiler.Compile("seed_schema.json")
	if err != nil {
		return nil, fmt.Errorf("failed to compile seed schema: %w", err)
	}

	return &seedService{
		users:       users,
		courses:     courses,
		assignments: assignments,
		groups:      groups,
		schema:      schema,
		enabled:     enabled,
		token:       token,
		logger:      logger.With().Str("component", "seed_service").Logger(),
	}, nil
}

// Load validates and writes the dataset. Users whose email already exists are
// skipped rather than treated as failures, so reseeding is repeatable.
func (s *seedService) Load(ctx context.Context, token string, payload []byte) (dto.SeedSummary, error) {
	if !s.enabled {
		return dto.SeedSummary{}, ErrSeedDisabled
	}
	if !s.validateToken(token) {
		return dto.SeedSummary{}, ErrSeedUnauthorized
	}

	var document any
	if err := json.Unmarshal(payload, &document); err != nil {
		return dto.SeedSummary{}, fmt.Errorf("%w: %v", ErrSeedInvalid, err)
	}
	if err := s.schema.Validate(document); err != nil {
		return dto.SeedSummary{}, fmt.Errorf("%w: %v", ErrSeedInvalid, err)
	}

	var dataset dto.SeedDataset
	if err := json.Unmarshal(payload, &dataset); err != nil {
		return dto.SeedSummary{}, fmt.Errorf("%w: %v", ErrSeedInvalid, err)
	}

	var summary dto.SeedSummary
	for _, user := range dataset.Users {
		if err := s.users.Append(ctx, user); err != nil {
			if errors.Is(err, repository.ErrDuplicateEmail) {
				continue
			}
			return summary, err
		}
		summary.Users++
	}

	for _, course := range dataset.Courses {
		if err := s.courses.Append(ctx, course); err != nil {
			return summary, err
		}
		summary.Courses++
	}

	for _, assignment := range dataset.Assignments {
		if err := s.assignments.Append(ctx, assignment); err != nil {
			return summary, err
		}
		summary.Assignments++
	}

	for _, group := range dataset.Groups {
		if err := s.groups.Append(ctx, group); err != nil {
			return summary, err
		}
		summary.Groups++
	}

	s.logger.Info().
		Int("users", summary.Users).
		Int("courses", summary.Courses).
		Int("assignments", summary.Assignments).
		Int("groups", summary.Groups).
		Msg("demo dataset seeded")

	return summary, nil
}

func (s *seedService) validateToken(token string) bool {
	expected := strings.TrimSpace(s.token)
	if expected == "" {
		return false
	}

	provided := strings.TrimSpace(token)
	return subtle.ConstantTimeCompare([]byte(expected), []byte(provided)) == 1
}
