package model

import "math/rand"

var CompletionMessages = []string{
	"✨ Sparkling!",
	"That's the stuff!",
	"Your future self thanks you!",
	"One less thing™",
	"Look at you go!",
	"Squeaky clean!",
	"Nailed it!",
	"Fresh as a daisy!",
	"You make it look easy!",
	"Another one bites the dust!",
	"Clean machine!",
	"Spotless!",
}

var EmptyStateMessages = []string{
	"Nothing to clean! Go put your feet up 🛋️",
	"All clear! This house isn't going to relax in itself",
	"Zero tasks. You either cleaned everything or you're in denial 🤷",
	"A clean slate! Literally.",
	"No tasks here. Suspicious... 🧐",
	"Free as a bird! A very clean bird.",
}

var WeekendMessages = []string{
	"A clean house is a happy house — but so is a house where someone took a nap instead. Balance.",
	"Weekend mode: activated. Cleaning mode: optional.",
	"It's the weekend! Clean if you want, nap if you don't.",
	"Saturday vibes: do one thing, feel like a hero.",
}

func RandomMessage(list []string) string {
	if len(list) == 0 {
		return ""
	}
	return list[rand.Intn(len(list))]
}
