package reconciler

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"golang.org/x/time/rate"

	logger_lib "github.com/s21platform/logger-lib"

	"github.com/s21platform/buffer-service/internal/config"
	"github.com/s21platform/buffer-service/internal/model"
)

// Reconciler repairs drift between the buffer and the remote history, one
// bounded window per channel. Correctness is scoped to the intersection of
// the local and remote windows: anything older than chunkSize messages on
// either side is never evaluated.
type Reconciler struct {
	repository     DBRepo
	remote         RemoteClient
	limiter        *rate.Limiter
	chunkSize      int
	channelTimeout time.Duration
}

func New(repository DBRepo, remote RemoteClient, cfg *config.Config) *Reconciler {
	return &Reconciler{
		repository:     repository,
		remote:         remote,
		limiter:        rate.NewLimiter(rate.Every(cfg.Reconcile.ChannelDelay), 1),
		chunkSize:      cfg.Reconcile.ChunkSize,
		channelTimeout: cfg.Reconcile.ChannelTimeout,
	}
}

// Run sweeps every guild the bot account can see. A failure in one guild does
// not prevent reconciling the others. Returns grand totals.
func (r *Reconciler) Run(ctx context.Context) (int, int) {
	logger := logger_lib.FromContext(ctx, config.KeyLogger)
	logger.AddFuncName("Run")

	sweepID := uuid.New().String()
	logger.Info(fmt.Sprintf("starting reconciliation sweep %s", sweepID))

	guildIDs, err := r.remote.GuildIDs(ctx)
	if err != nil {
		logger.Error(fmt.Sprintf("failed to list guilds: %v", err))
		return 0, 0
	}

	totalAdded := 0
	totalRemoved := 0
	for _, guildID := range guildIDs {
		added, removed, err := r.ReconcileGuild(ctx, guildID)
		if err != nil {
			logger.Error(fmt.Sprintf("failed to reconcile guild %s: %v", guildID, err))
			continue
		}
		totalAdded += added
		totalRemoved += removed
	}

	logger.Info(fmt.Sprintf("reconciliation sweep %s complete: %d guilds, +%d added, -%d removed",
		sweepID, len(guildIDs), totalAdded, totalRemoved))

	return totalAdded, totalRemoved
}

// ReconcileGuild sweeps every text channel of the guild, skipping channels the
// bot cannot read and pacing channel fetches against remote rate limits.
func (r *Reconciler) ReconcileGuild(ctx context.Context, guildID string) (int, int, error) {
	logger := logger_lib.FromContext(ctx, config.KeyLogger)
	logger.AddFuncName("ReconcileGuild")

	channels, err := r.remote.TextChannels(ctx, guildID)
	if err != nil {
		return 0, 0, fmt.Errorf("failed to list channels: %v", err)
	}

	totalAdded := 0
	totalRemoved := 0
	processed := 0
	for _, channel := range channels {
		if err := r.limiter.Wait(ctx); err != nil {
			return totalAdded, totalRemoved, fmt.Errorf("sweep cancelled: %v", err)
		}

		canRead, err := r.remote.CanReadHistory(ctx, channel.ID)
		if err != nil {
			logger.Warn(fmt.Sprintf("failed to check permissions for #%s: %v", channel.Name, err))
			continue
		}
		if !canRead {
			continue
		}

		added, removed := r.reconcileChannel(ctx, guildID, channel)
		totalAdded += added
		totalRemoved += removed
		processed++
	}

	logger.Info(fmt.Sprintf("guild %s reconciled: %d channels, +%d added, -%d removed",
		guildID, processed, totalAdded, totalRemoved))

	return totalAdded, totalRemoved, nil
}

// reconcileChannel diffs the local bounded window against the remote one and
// repairs both directions. Any failure is contained here: the channel reports
// (0, 0) and the sweep moves on without retrying.
func (r *Reconciler) reconcileChannel(ctx context.Context, guildID string, channel model.RemoteChannel) (int, int) {
	logger := logger_lib.FromContext(ctx, config.KeyLogger)
	logger.AddFuncName("reconcileChannel")

	ctx, cancel := context.WithTimeout(ctx, r.channelTimeout)
	defer cancel()

	localIDs, err := r.repository.GetChannelMessageIDs(ctx, channel.ID, r.chunkSize)
	if err != nil {
		logger.Error(fmt.Sprintf("failed to read local window for #%s: %v", channel.Name, err))
		return 0, 0
	}

	remoteMessages, err := r.remote.ChannelHistory(ctx, guildID, channel.ID, r.chunkSize)
	if err != nil {
		logger.Error(fmt.Sprintf("failed to fetch history for #%s: %v", channel.Name, err))
		return 0, 0
	}

	localSet := make(map[string]struct{}, len(localIDs))
	for _, id := range localIDs {
		localSet[id] = struct{}{}
	}

	remoteSet := make(map[string]struct{}, len(remoteMessages))
	for _, msg := range remoteMessages {
		remoteSet[msg.MessageID] = struct{}{}
	}

	added := 0
	for i := range remoteMessages {
		snapshot := &remoteMessages[i]
		if _, ok := localSet[snapshot.MessageID]; ok {
			continue
		}
		if snapshot.AuthorIsBot {
			continue
		}

		created, err := r.repository.SaveMessage(ctx, snapshot.ToMessage())
		if err != nil {
			logger.Error(fmt.Sprintf("failed to save message %s in #%s: %v", snapshot.MessageID, channel.Name, err))
			continue
		}
		if created {
			added++
		}
	}

	var toRemove []string
	for _, id := range localIDs {
		if _, ok := remoteSet[id]; !ok {
			toRemove = append(toRemove, id)
		}
	}

	removed := int64(0)
	if len(toRemove) > 0 {
		removed, err = r.repository.BulkDeleteMessages(ctx, toRemove)
		if err != nil {
			logger.Error(fmt.Sprintf("failed to remove messages in #%s: %v", channel.Name, err))
			removed = 0
		}
	}

	if added > 0 || removed > 0 {
		logger.Info(fmt.Sprintf("#%s: +%d added, -%d removed", channel.Name, added, removed))
	}

	return added, int(removed)
}
