package memory

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/astralfront/supremacy/internal/actor"
	"github.com/astralfront/supremacy/internal/storage"
)

type StorageSuite struct {
	suite.Suite
	storage *Storage
	ctx     context.Context
	key     actor.Key
}

func TestStorageSuite(t *testing.T) {
	suite.Run(t, new(StorageSuite))
}

func (s *StorageSuite) SetupTest() {
	s.storage = New()
	s.ctx = context.Background()
	s.key = actor.KeyFor(actor.KindCredential, "u_1")
}

func (s *StorageSuite) TestPutAndGet() {
	err := s.storage.Put(s.ctx, s.key, "record", []byte(`{"salt":"abc"}`))
	s.Require().NoError(err)

	data, err := s.storage.Get(s.ctx, s.key, "record")
	s.Require().NoError(err)
	s.Equal([]byte(`{"salt":"abc"}`), data)
}

func (s *StorageSuite) TestGetMissingField() {
	_, err := s.storage.Get(s.ctx, s.key, "nope")
	s.ErrorIs(err, storage.ErrNotFound)
}

func (s *StorageSuite) TestNamespacesAreIsolated() {
	other := actor.KeyFor(actor.KindCredential, "u_2")

	_ = s.storage.Put(s.ctx, s.key, "record", []byte("one"))
	_ = s.storage.Put(s.ctx, other, "record", []byte("two"))

	data, err := s.storage.Get(s.ctx, s.key, "record")
	s.Require().NoError(err)
	s.Equal([]byte("one"), data)
}

func (s *StorageSuite) TestFields() {
	_ = s.storage.Put(s.ctx, s.key, "a", []byte("1"))
	_ = s.storage.Put(s.ctx, s.key, "b", []byte("2"))

	fields, err := s.storage.Fields(s.ctx, s.key)
	s.Require().NoError(err)
	s.Len(fields, 2)
	s.Equal([]byte("1"), fields["a"])
	s.Equal([]byte("2"), fields["b"])
}

func (s *StorageSuite) TestDeleteField() {
	_ = s.storage.Put(s.ctx, s.key, "a", []byte("1"))

	err := s.storage.Delete(s.ctx, s.key, "a")
	s.Require().NoError(err)

	_, err = s.storage.Get(s.ctx, s.key, "a")
	s.ErrorIs(err, storage.ErrNotFound)
}

func (s *StorageSuite) TestDeleteMissingFieldIsNoop() {
	s.NoError(s.storage.Delete(s.ctx, s.key, "never-existed"))
}

func (s *StorageSuite) TestClearRemovesNamespace() {
	_ = s.storage.Put(s.ctx, s.key, "a", []byte("1"))
	_ = s.storage.Put(s.ctx, s.key, "b", []byte("2"))

	err := s.storage.Clear(s.ctx, s.key)
	s.Require().NoError(err)

	fields, err := s.storage.Fields(s.ctx, s.key)
	s.Require().NoError(err)
	s.Empty(fields)
}

func (s *StorageSuite) TestStoredValueIsCopied() {
	value := []byte("original")
	_ = s.storage.Put(s.ctx, s.key, "a", value)
	value[0] = 'X'

	data, err := s.storage.Get(s.ctx, s.key, "a")
	s.Require().NoError(err)
	s.Equal([]byte("original"), data)
}

func (s *StorageSuite) TestJSONHelpers() {
	type record struct {
		Name string `json:"name"`
	}

	err := storage.PutJSON(s.ctx, s.storage, s.key, "rec", record{Name: "alderaan"})
	s.Require().NoError(err)

	var got record
	err = storage.GetJSON(s.ctx, s.storage, s.key, "rec", &got)
	s.Require().NoError(err)
	s.Equal("alderaan", got.Name)
}
