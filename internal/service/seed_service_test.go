package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

const seedPayload = `{
  "users": [
    {"name": "Grace", "email": "grace@uni.edu", "password": "hopper1", "role": "professor"},
    {"name": "Ada", "email": "ada@uni.edu", "password": "lovelace", "role": "student"}
  ],
  "courses": [
    {"id": "c1", "name": "Distributed Systems", "professor": "Grace", "professorEmail": "grace@uni.edu", "students": ["ada@uni.edu"]}
  ],
  "assignments": [
    {"id": "a1", "courseId": "c1", "title": "Lab 1", "deadline": "2026-09-15T23:59:00Z", "type": "group"}
  ],
  "groups": [
    {"courseId": "c1", "assignmentId": "a1", "members": ["ada@uni.edu"]}
  ]
}`

func newSeedService(t *testing.T, f *fixture, enabled bool, token string) SeedService {
	t.Helper()

	svc, err := NewSeedService(f.users, f.courses, f.assignments, f.groups, enabled, token, f.logger)
	require.NoError(t, err)
	return svc
}

func TestSeedLoadGuards(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	disabled := newSeedService(t, f, false, "secret")
	_, err := disabled.Load(ctx, "secret", []byte(seedPayload))
	require.ErrorIs(t, err, ErrSeedDisabled)

	svc := newSeedService(t, f, true, "secret")
	_, err = svc.Load(ctx, "wrong", []byte(seedPayload))
	require.ErrorIs(t, err, ErrSeedUnauthorized)

	_, err = svc.Load(ctx, "secret", []byte(`{"users": [{"email": "broken"}]}`))
	require.ErrorIs(t, err, ErrSeedInvalid)

	_, err = svc.Load(ctx, "secret", []byte(`not json`))
	require.ErrorIs(t, err, ErrSeedInvalid)
}

func TestSeedLoadWritesCollectionsAndSkipsDuplicates(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	svc := newSeedService(t, f, true, "secret")

	summary, err := svc.Load(ctx, "secret", []byte(seedPayload))
	require.NoError(t, err)
	require.Equal(t, 2, summary.Users)
	require.Equal(t, 1, summary.Courses)
	require.Equal(t, 1, summary.Assignments)
	require.Equal(t, 1, summary.Groups)

	course, err := f.courses.GetByID(ctx, "c1")
	require.NoError(t, err)
	require.Equal(t, []string{"ada@uni.edu"}, course.Students)

	// Reseeding skips the users that already exist.
	summary, err = svc.Load(ctx, "secret", []byte(seedPayload))
	require.NoError(t, err)
	require.Equal(t, 0, summary.Users)

	users, err := f.users.List(ctx)
	require.NoError(t, err)
	require.Len(t, users, 2)
}
