package service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/DevGleb/RealWorldApp/internal/mocks"
	"github.com/DevGleb/RealWorldApp/internal/service"
)

func TestTagService_List(t *testing.T) {
	t.Run("returns the global tag set", func(t *testing.T) {
		tagRepo := mocks.NewMockTagRepository(t)
		svc := service.NewTagService(tagRepo)

		tagRepo.EXPECT().ListAllDistinct(mock.Anything).Return([]string{"dragons", "training"}, nil)

		tags, err := svc.List(context.Background())

		require.NoError(t, err)
		assert.Equal(t, []string{"dragons", "training"}, tags)
	})

	t.Run("empty store yields an empty set", func(t *testing.T) {
		tagRepo := mocks.NewMockTagRepository(t)
		svc := service.NewTagService(tagRepo)

		tagRepo.EXPECT().ListAllDistinct(mock.Anything).Return([]string{}, nil)

		tags, err := svc.List(context.Background())

		require.NoError(t, err)
		assert.Empty(t, tags)
	})
}
