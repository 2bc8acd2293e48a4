package redis

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/suite"

	"github.com/astralfront/supremacy/internal/actor"
	"github.com/astralfront/supremacy/internal/storage"
)

type StorageSuite struct {
	suite.Suite
	mini    *miniredis.Miniredis
	storage *Storage
	ctx     context.Context
	key     actor.Key
}

func TestStorageSuite(t *testing.T) {
	suite.Run(t, new(StorageSuite))
}

func (s *StorageSuite) SetupTest() {
	s.mini = miniredis.RunT(s.T())

	client := redis.NewClient(&redis.Options{
		Addr: s.mini.Addr(),
	})

	s.storage = NewWithClient(client, DefaultConfig())
	s.ctx = context.Background()
	s.key = actor.KeyFor(actor.KindGame, "g_1")
}

func (s *StorageSuite) TearDownTest() {
	if s.storage != nil {
		_ = s.storage.Close()
	}
	if s.mini != nil {
		s.mini.Close()
	}
}

func (s *StorageSuite) TestPutAndGet() {
	err := s.storage.Put(s.ctx, s.key, "state", []byte(`{"turn":0}`))
	s.Require().NoError(err)

	data, err := s.storage.Get(s.ctx, s.key, "state")
	s.Require().NoError(err)
	s.Equal([]byte(`{"turn":0}`), data)
}

func (s *StorageSuite) TestGetMissingField() {
	_, err := s.storage.Get(s.ctx, s.key, "nope")
	s.ErrorIs(err, storage.ErrNotFound)
}

func (s *StorageSuite) TestGetMissingActor() {
	_, err := s.storage.Get(s.ctx, actor.KeyFor(actor.KindGame, "never"), "state")
	s.ErrorIs(err, storage.ErrNotFound)
}

func (s *StorageSuite) TestActorMapsToOneHash() {
	_ = s.storage.Put(s.ctx, s.key, "state", []byte("a"))
	_ = s.storage.Put(s.ctx, s.key, "view:Empire", []byte("b"))

	// Both fields live on the one hash key for the actor.
	s.True(s.mini.Exists("supremacy:actor:game/g_1"))
	fields, err := s.storage.Fields(s.ctx, s.key)
	s.Require().NoError(err)
	s.Len(fields, 2)
}

func (s *StorageSuite) TestDeleteField() {
	_ = s.storage.Put(s.ctx, s.key, "state", []byte("a"))

	err := s.storage.Delete(s.ctx, s.key, "state")
	s.Require().NoError(err)

	_, err = s.storage.Get(s.ctx, s.key, "state")
	s.ErrorIs(err, storage.ErrNotFound)
}

func (s *StorageSuite) TestClearDropsWholeNamespace() {
	_ = s.storage.Put(s.ctx, s.key, "state", []byte("a"))
	_ = s.storage.Put(s.ctx, s.key, "view:Empire", []byte("b"))

	err := s.storage.Clear(s.ctx, s.key)
	s.Require().NoError(err)

	s.False(s.mini.Exists("supremacy:actor:game/g_1"))

	fields, err := s.storage.Fields(s.ctx, s.key)
	s.Require().NoError(err)
	s.Empty(fields)
}

func (s *StorageSuite) TestNamespacesAreIsolated() {
	other := actor.KeyFor(actor.KindGame, "g_2")

	_ = s.storage.Put(s.ctx, s.key, "state", []byte("one"))
	_ = s.storage.Put(s.ctx, other, "state", []byte("two"))

	_ = s.storage.Clear(s.ctx, s.key)

	data, err := s.storage.Get(s.ctx, other, "state")
	s.Require().NoError(err)
	s.Equal([]byte("two"), data)
}
