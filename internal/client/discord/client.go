package discord

import (
	"context"
	"encoding/json"
	"fmt"
	"log"

	"github.com/bwmarrin/discordgo"

	"github.com/s21platform/buffer-service/internal/config"
	"github.com/s21platform/buffer-service/internal/model"
)

const guildPageSize = 100

// Client adapts the remote platform REST API for the reconciler. Live event
// delivery is not handled here; events arrive through the kafka topic.
type Client struct {
	session   *discordgo.Session
	botUserID string
}

func New(cfg *config.Config) *Client {
	session, err := discordgo.New("Bot " + cfg.Discord.Token)
	if err != nil {
		log.Fatal("error create discord session: ", err)
	}

	botUser, err := session.User("@me")
	if err != nil {
		log.Fatal("error resolve bot user: ", err)
	}

	return &Client{
		session:   session,
		botUserID: botUser.ID,
	}
}

func (c *Client) Close() {
	_ = c.session.Close()
}

func (c *Client) BotUserID() string {
	return c.botUserID
}

// GuildIDs lists every guild the bot account is a member of.
func (c *Client) GuildIDs(ctx context.Context) ([]string, error) {
	var ids []string

	after := ""
	for {
		guilds, err := c.session.UserGuilds(guildPageSize, "", after, discordgo.WithContext(ctx))
		if err != nil {
			return nil, fmt.Errorf("failed to list guilds: %v", err)
		}

		for _, guild := range guilds {
			ids = append(ids, guild.ID)
		}

		if len(guilds) < guildPageSize {
			return ids, nil
		}
		after = guilds[len(guilds)-1].ID
	}
}

func (c *Client) TextChannels(ctx context.Context, guildID string) ([]model.RemoteChannel, error) {
	channels, err := c.session.GuildChannels(guildID, discordgo.WithContext(ctx))
	if err != nil {
		return nil, fmt.Errorf("failed to list guild channels: %v", err)
	}

	var result []model.RemoteChannel
	for _, channel := range channels {
		if channel.Type != discordgo.ChannelTypeGuildText {
			continue
		}
		result = append(result, model.RemoteChannel{
			ID:   channel.ID,
			Name: channel.Name,
		})
	}

	return result, nil
}

// CanReadHistory reports whether the bot holds both view-channel and
// read-message-history on the channel.
func (c *Client) CanReadHistory(ctx context.Context, channelID string) (bool, error) {
	permissions, err := c.session.UserChannelPermissions(c.botUserID, channelID, discordgo.WithContext(ctx))
	if err != nil {
		return false, fmt.Errorf("failed to check channel permissions: %v", err)
	}

	required := int64(discordgo.PermissionViewChannel | discordgo.PermissionReadMessageHistory)

	return permissions&required == required, nil
}

// ChannelHistory fetches the most recent limit messages of the channel, newest
// first, as snapshots.
func (c *Client) ChannelHistory(ctx context.Context, guildID, channelID string, limit int) ([]model.MessageSnapshot, error) {
	messages, err := c.session.ChannelMessages(channelID, limit, "", "", "", discordgo.WithContext(ctx))
	if err != nil {
		return nil, fmt.Errorf("failed to fetch channel history: %v", err)
	}

	snapshots := make([]model.MessageSnapshot, 0, len(messages))
	for _, msg := range messages {
		snapshots = append(snapshots, toSnapshot(guildID, channelID, msg))
	}

	return snapshots, nil
}

func toSnapshot(guildID, channelID string, msg *discordgo.Message) model.MessageSnapshot {
	snapshot := model.MessageSnapshot{
		MessageID: msg.ID,
		GuildID:   guildID,
		ChannelID: channelID,
		CreatedAt: msg.Timestamp,
		EditedAt:  msg.EditedTimestamp,
		IsPinned:  msg.Pinned,
	}

	if msg.Author != nil {
		snapshot.AuthorID = msg.Author.ID
		snapshot.AuthorName = msg.Author.String()
		snapshot.AuthorIsBot = msg.Author.Bot
	}

	if msg.Content != "" {
		content := msg.Content
		snapshot.Content = &content
	}

	for _, attachment := range msg.Attachments {
		snapshot.Attachments = append(snapshot.Attachments, model.Attachment{
			ID:       attachment.ID,
			Filename: attachment.Filename,
			URL:      attachment.URL,
		})
	}

	for _, embed := range msg.Embeds {
		snapshot.Embeds = append(snapshot.Embeds, model.Embed{
			Type:  string(embed.Type),
			Title: embed.Title,
			URL:   embed.URL,
		})
	}

	if raw, err := json.Marshal(msg); err == nil {
		snapshot.Raw = raw
	}

	return snapshot
}
