package jobs

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/collabotree/collabotree/internal/config"
)

func TestNew(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	orderService := NewMockOrderService(ctrl)
	cfg := &config.Config{AutoCompleteAfter: time.Hour * 72}

	scheduler := New(cfg, orderService)
	assert.NotNil(t, scheduler)
	assert.Equal(t, time.Hour*72, scheduler.autoCompleteAfter)
}

func TestStartAndStop(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	orderService := NewMockOrderService(ctrl)
	cfg := &config.Config{AutoCompleteAfter: time.Hour * 72}

	scheduler := New(cfg, orderService)

	ctx, cancel := context.WithCancel(context.Background())
	err := scheduler.Start(ctx)
	assert.NoError(t, err)
	assert.Len(t, scheduler.cron.Entries(), 1)

	cancel()
}
