package common

import "github.com/bwmarrin/discordgo"

// OptionMap indexes a command's options by name.
func OptionMap(i *discordgo.InteractionCreate) map[string]*discordgo.ApplicationCommandInteractionDataOption {
	options := i.ApplicationCommandData().Options
	m := make(map[string]*discordgo.ApplicationCommandInteractionDataOption, len(options))
	for _, opt := range options {
		m[opt.Name] = opt
	}
	return m
}

// FloatOption returns a float option value, or the fallback when absent.
func FloatOption(m map[string]*discordgo.ApplicationCommandInteractionDataOption, name string, fallback float64) float64 {
	if opt, ok := m[name]; ok {
		return opt.FloatValue()
	}
	return fallback
}

// IntOption returns an integer option value, or the fallback when absent.
func IntOption(m map[string]*discordgo.ApplicationCommandInteractionDataOption, name string, fallback int64) int64 {
	if opt, ok := m[name]; ok {
		return opt.IntValue()
	}
	return fallback
}

// StringOption returns a string option value, or the fallback when absent.
func StringOption(m map[string]*discordgo.ApplicationCommandInteractionDataOption, name string, fallback string) string {
	if opt, ok := m[name]; ok {
		return opt.StringValue()
	}
	return fallback
}
