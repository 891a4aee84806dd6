package catalog

var defaultLevelDescription = LevelDescription{
	Summary: "The A1 level is the Beginner level on the Common European Framework of Reference for Languages (CEFR). At this level, a person is considered a Basic User.",
	Skills: Skills{
		Speaking:  "Understand and use familiar everyday expressions and very basic phrases. Introduce themselves and others.",
		Listening: "Recognize familiar words and very basic phrases concerning themselves and family when people speak slowly.",
		Reading:   "Understand familiar names, words, and very simple sentences, for example on notices.",
		Writing:   "Write simple sentences and phrases, such as a postcard or a very simple personal letter.",
	},
}

var fallbackContent = map[TenseID]TenseContent{
	SimplePast: {
		Title:       "Simple Past",
		Explanation: "Used for actions that happened and finished in the past.",
		Example:     "I walked to school yesterday.",
		UseCase:     "Completed past actions.",
	},
	PastContinuous: {
		Title:       "Past Continuous",
		Explanation: "Used for actions that were happening at a specific time in the past.",
		Example:     "I was reading a book when you called.",
		UseCase:     "Interrupted past actions or parallel actions.",
	},
	PastPerfect: {
		Title:       "Past Perfect",
		Explanation: "Used to show that one action happened before another action in the past.",
		Example:     "I had finished my homework before I went out.",
		UseCase:     "Sequence of past events.",
	},
	PastPerfectContinuous: {
		Title:       "Past Perfect Continuous",
		Explanation: "Used to show that an action started in the past and continued up to another point in the past.",
		Example:     "I had been waiting for an hour when the bus finally arrived.",
		UseCase:     "Duration before a past event.",
	},
	SimplePresent: {
		Title:       "Simple Present",
		Explanation: "Used for facts, habits, and general truths.",
		Example:     "I play tennis every Sunday.",
		UseCase:     "Habits and facts.",
	},
	PresentContinuous: {
		Title:       "Present Continuous",
		Explanation: "Used for actions happening right now.",
		Example:     "I am writing an email.",
		UseCase:     "Actions in progress.",
	},
	PresentPerfect: {
		Title:       "Present Perfect",
		Explanation: "Used for past actions that have a connection to the present.",
		Example:     "I have visited Paris twice.",
		UseCase:     "Life experiences or recent changes.",
	},
	PresentPerfectContinuous: {
		Title:       "Present Perfect Continuous",
		Explanation: "Used for actions that started in the past and are still continuing.",
		Example:     "I have been learning English for three years.",
		UseCase:     "Continuing actions.",
	},
	SimpleFuture: {
		Title:       "Simple Future",
		Explanation: "Used for predictions or instant decisions.",
		Example:     "I will call you later.",
		UseCase:     "Predictions and promises.",
	},
	FutureContinuous: {
		Title:       "Future Continuous",
		Explanation: "Used for actions that will be in progress at a specific time in the future.",
		Example:     "This time tomorrow, I will be flying to London.",
		UseCase:     "Future actions in progress.",
	},
	FuturePerfect: {
		Title:       "Future Perfect",
		Explanation: "Used for actions that will be completed before a specific time in the future.",
		Example:     "By next year, I will have graduated.",
		UseCase:     "Completed future actions.",
	},
	FuturePerfectContinuous: {
		Title:       "Future Perfect Continuous",
		Explanation: "Used to show the duration of an action up to a certain point in the future.",
		Example:     "By 5 PM, I will have been working for eight hours.",
		UseCase:     "Duration up to a future point.",
	},
}

// FallbackContent returns a fresh copy of the static content for all twelve
// tenses. Callers may modify the result freely.
func FallbackContent() map[TenseID]TenseContent {
	out := make(map[TenseID]TenseContent, len(fallbackContent))
	for id, c := range fallbackContent {
		out[id] = c
	}
	return out
}

// DefaultLevelDescription is shown until a generated description exists.
func DefaultLevelDescription() LevelDescription {
	return defaultLevelDescription
}
