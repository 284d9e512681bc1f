package webmd_test

import (
	"testing"
	"time"

	"github.com/fwojciec/webmd"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCrawlConfig_WithDefaults(t *testing.T) {
	t.Parallel()

	t.Run("fills unset values", func(t *testing.T) {
		t.Parallel()

		cfg := webmd.CrawlConfig{Seed: "https://example.com"}.WithDefaults()
		assert.Equal(t, webmd.DefaultMaxPages, cfg.MaxPages)
		require.NotNil(t, cfg.Delay)
		assert.Equal(t, webmd.DefaultDelay, *cfg.Delay)
	})

	t.Run("keeps explicit values", func(t *testing.T) {
		t.Parallel()

		delay := time.Second
		cfg := webmd.CrawlConfig{
			Seed:     "https://example.com",
			MaxPages: 5,
			Delay:    &delay,
		}.WithDefaults()
		assert.Equal(t, 5, cfg.MaxPages)
		require.NotNil(t, cfg.Delay)
		assert.Equal(t, time.Second, *cfg.Delay)
	})

	t.Run("an explicit zero delay disables pacing", func(t *testing.T) {
		t.Parallel()

		delay := time.Duration(0)
		cfg := webmd.CrawlConfig{Seed: "https://example.com", Delay: &delay}.WithDefaults()
		require.NotNil(t, cfg.Delay)
		assert.Equal(t, time.Duration(0), *cfg.Delay, "explicit zero must survive defaulting")
	})

	t.Run("the zero value respects robots", func(t *testing.T) {
		t.Parallel()

		cfg := webmd.CrawlConfig{Seed: "https://example.com"}.WithDefaults()
		assert.False(t, cfg.IgnoreRobots, "robots compliance is the default")
	})
}

func TestCrawlConfig_Validate(t *testing.T) {
	t.Parallel()

	t.Run("accepts a defaulted config", func(t *testing.T) {
		t.Parallel()

		cfg := webmd.CrawlConfig{Seed: "https://example.com"}.WithDefaults()
		assert.NoError(t, cfg.Validate())
	})

	t.Run("rejects missing seed", func(t *testing.T) {
		t.Parallel()

		err := webmd.CrawlConfig{MaxPages: 10}.Validate()
		require.Error(t, err)
		assert.Equal(t, webmd.EINVALID, webmd.ErrorCode(err))
	})

	t.Run("rejects non-positive max pages", func(t *testing.T) {
		t.Parallel()

		err := webmd.CrawlConfig{Seed: "https://example.com", MaxPages: -1}.Validate()
		require.Error(t, err)
		assert.Equal(t, webmd.EINVALID, webmd.ErrorCode(err))
	})

	t.Run("rejects negative delay", func(t *testing.T) {
		t.Parallel()

		delay := -time.Second
		err := webmd.CrawlConfig{Seed: "https://example.com", MaxPages: 10, Delay: &delay}.Validate()
		require.Error(t, err)
		assert.Equal(t, webmd.EINVALID, webmd.ErrorCode(err))
	})
}
