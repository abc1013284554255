package analysis

import (
	"errors"

	"chancebot/domain/entities"
	"chancebot/domain/interfaces"

	"github.com/bwmarrin/discordgo"
	log "github.com/sirupsen/logrus"
)

// Feature bundles the lottery analysis commands: rtp, breakeven, optimize,
// suggest, simulate and compare.
type Feature struct {
	economics   interfaces.EconomicsService
	optimizer   interfaces.OptimizerService
	simulation  interfaces.SimulationService
	comparison  interfaces.ComparisonService
	suggestions interfaces.SuggestionService
}

// NewFeature creates a new analysis feature instance
func NewFeature(
	economics interfaces.EconomicsService,
	optimizer interfaces.OptimizerService,
	simulation interfaces.SimulationService,
	comparison interfaces.ComparisonService,
	suggestions interfaces.SuggestionService,
) *Feature {
	return &Feature{
		economics:   economics,
		optimizer:   optimizer,
		simulation:  simulation,
		comparison:  comparison,
		suggestions: suggestions,
	}
}

// HandleCommand routes analysis slash commands
func (f *Feature) HandleCommand(s *discordgo.Session, i *discordgo.InteractionCreate) {
	switch i.ApplicationCommandData().Name {
	case "rtp":
		f.handleRTP(s, i)
	case "breakeven":
		f.handleBreakEven(s, i)
	case "optimize":
		f.handleOptimize(s, i)
	case "suggest":
		f.handleSuggest(s, i)
	case "simulate":
		f.handleSimulate(s, i)
	case "compare":
		f.handleCompare(s, i)
	default:
		log.Warnf("Unknown analysis command: %s", i.ApplicationCommandData().Name)
	}
}

// userMessage turns an engine error into the message shown to the user.
func userMessage(err error) string {
	switch {
	case errors.Is(err, entities.ErrInvalidInput):
		return "**Error:** " + trimSentinel(err, entities.ErrInvalidInput)
	case errors.Is(err, entities.ErrMarginExhausted):
		return "**Error:** " + trimSentinel(err, entities.ErrMarginExhausted) + "\n💡 Lower your target RTP or reduce the affiliate percentage."
	case errors.Is(err, entities.ErrInfeasible):
		return "**Error:** No profitable setup exists for these constraints. Try a different strategy or affiliate rate."
	default:
		return "Something went wrong. Please try again later."
	}
}

// trimSentinel strips the sentinel prefix from a wrapped engine error so
// users see only the detail text.
func trimSentinel(err error, sentinel error) string {
	msg := err.Error()
	prefix := sentinel.Error() + ": "
	if len(msg) > len(prefix) && msg[:len(prefix)] == prefix {
		return msg[len(prefix):]
	}
	return msg
}
