package alerts

import (
	"chancebot/bot/common"
	"chancebot/domain/entities"
	"chancebot/domain/interfaces"

	"github.com/bwmarrin/discordgo"
	log "github.com/sirupsen/logrus"
)

// Feature bundles the alert commands: alert, myalerts and deletealert.
type Feature struct {
	alerts interfaces.AlertService
}

// NewFeature creates a new alerts feature instance
func NewFeature(alerts interfaces.AlertService) *Feature {
	return &Feature{alerts: alerts}
}

// HandleCommand routes alert slash commands
func (f *Feature) HandleCommand(s *discordgo.Session, i *discordgo.InteractionCreate) {
	switch i.ApplicationCommandData().Name {
	case "alert":
		f.handleCreate(s, i)
	case "myalerts":
		f.handleList(s, i)
	case "deletealert":
		f.handleDelete(s, i)
	default:
		log.Warnf("Unknown alerts command: %s", i.ApplicationCommandData().Name)
	}
}

func (f *Feature) handleCreate(s *discordgo.Session, i *discordgo.InteractionCreate) {
	userID := common.InteractionUserID(i)
	opts := common.OptionMap(i)

	var alert entities.Alert
	if opt, ok := opts["min_prize"]; ok {
		v := opt.FloatValue()
		alert.MinPrize = &v
	}
	if opt, ok := opts["max_prize"]; ok {
		v := opt.FloatValue()
		alert.MaxPrize = &v
	}
	if opt, ok := opts["max_ticket"]; ok {
		v := opt.FloatValue()
		alert.MaxTicket = &v
	}
	if opt, ok := opts["min_rtp"]; ok {
		v := opt.FloatValue()
		alert.MinRTP = &v
	}

	created, err := f.alerts.CreateAlert(userID, alert)
	if err != nil {
		common.RespondWithError(s, i, userFacing(err))
		return
	}

	log.WithFields(log.Fields{
		"userID":  userID,
		"alertID": created.ID,
	}).Info("Alert created")

	if err := common.RespondWithEmbed(s, i, CreateAlertCreatedEmbed(created), true); err != nil {
		log.WithError(err).Error("Failed to respond to alert command")
	}
}

func (f *Feature) handleList(s *discordgo.Session, i *discordgo.InteractionCreate) {
	userID := common.InteractionUserID(i)
	alerts := f.alerts.GetAlerts(userID)

	if err := common.RespondWithEmbed(s, i, CreateAlertListEmbed(alerts), true); err != nil {
		log.WithError(err).Error("Failed to respond to myalerts command")
	}
}

func (f *Feature) handleDelete(s *discordgo.Session, i *discordgo.InteractionCreate) {
	userID := common.InteractionUserID(i)
	opts := common.OptionMap(i)
	alertID := int(common.IntOption(opts, "id", 0))

	if err := f.alerts.DeleteAlert(userID, alertID); err != nil {
		common.RespondWithError(s, i, userFacing(err))
		return
	}

	if err := common.RespondWithSuccess(s, i, "Alert deleted! Remaining alerts were renumbered.", true); err != nil {
		log.WithError(err).Error("Failed to respond to deletealert command")
	}
}

// userFacing strips engine sentinel prefixes; alert errors are already
// written for users.
func userFacing(err error) string {
	msg := err.Error()
	prefix := entities.ErrInvalidInput.Error() + ": "
	if len(msg) > len(prefix) && msg[:len(prefix)] == prefix {
		return msg[len(prefix):]
	}
	return msg
}
