package catalog

// TimeFrame groups tenses on the timeline.
type TimeFrame string

const (
	TimeFramePast    TimeFrame = "Past"
	TimeFramePresent TimeFrame = "Present"
	TimeFrameFuture  TimeFrame = "Future"
)

// TimeFrames returns the frames in timeline order.
func TimeFrames() []TimeFrame {
	return []TimeFrame{TimeFramePast, TimeFramePresent, TimeFrameFuture}
}

// TenseID identifies one of the twelve English tenses.
type TenseID string

const (
	SimplePast            TenseID = "simple_past"
	PastContinuous        TenseID = "past_continuous"
	PastPerfect           TenseID = "past_perfect"
	PastPerfectContinuous TenseID = "past_perfect_continuous"

	SimplePresent            TenseID = "simple_present"
	PresentContinuous        TenseID = "present_continuous"
	PresentPerfect           TenseID = "present_perfect"
	PresentPerfectContinuous TenseID = "present_perfect_continuous"

	SimpleFuture            TenseID = "simple_future"
	FutureContinuous        TenseID = "future_continuous"
	FuturePerfect           TenseID = "future_perfect"
	FuturePerfectContinuous TenseID = "future_perfect_continuous"
)

// TenseDefinition is the fixed catalog entry for a tense.
type TenseDefinition struct {
	ID           TenseID   `json:"id"`
	TimeFrame    TimeFrame `json:"timeFrame"`
	DefaultTitle string    `json:"defaultTitle"`
}

// TenseContent is level-specific text for one tense.
type TenseContent struct {
	Title       string `json:"title"`
	Explanation string `json:"explanation"`
	Example     string `json:"example"`
	UseCase     string `json:"useCase"`
}

// Complete reports whether every field is non-empty.
func (c TenseContent) Complete() bool {
	return c.Title != "" && c.Explanation != "" && c.Example != "" && c.UseCase != ""
}

// Skills describes what a learner can do in each skill area.
type Skills struct {
	Speaking  string `json:"speaking"`
	Listening string `json:"listening"`
	Reading   string `json:"reading"`
	Writing   string `json:"writing"`
}

// LevelDescription summarises a CEFR level.
type LevelDescription struct {
	Summary string `json:"summary"`
	Skills  Skills `json:"skills"`
}

func (d LevelDescription) Complete() bool {
	return d.Summary != "" &&
		d.Skills.Speaking != "" &&
		d.Skills.Listening != "" &&
		d.Skills.Reading != "" &&
		d.Skills.Writing != ""
}

// Timeline order: within each frame, from furthest back to furthest forward
// as drawn on the timeline.
var tenses = []TenseDefinition{
	{ID: PastPerfectContinuous, TimeFrame: TimeFramePast, DefaultTitle: "Past Perfect Continuous"},
	{ID: PastPerfect, TimeFrame: TimeFramePast, DefaultTitle: "Past Perfect"},
	{ID: PastContinuous, TimeFrame: TimeFramePast, DefaultTitle: "Past Continuous"},
	{ID: SimplePast, TimeFrame: TimeFramePast, DefaultTitle: "Simple Past"},

	{ID: PresentPerfectContinuous, TimeFrame: TimeFramePresent, DefaultTitle: "Present Perfect Continuous"},
	{ID: PresentPerfect, TimeFrame: TimeFramePresent, DefaultTitle: "Present Perfect"},
	{ID: SimplePresent, TimeFrame: TimeFramePresent, DefaultTitle: "Simple Present"},
	{ID: PresentContinuous, TimeFrame: TimeFramePresent, DefaultTitle: "Present Continuous"},

	{ID: SimpleFuture, TimeFrame: TimeFrameFuture, DefaultTitle: "Simple Future"},
	{ID: FutureContinuous, TimeFrame: TimeFrameFuture, DefaultTitle: "Future Continuous"},
	{ID: FuturePerfect, TimeFrame: TimeFrameFuture, DefaultTitle: "Future Perfect"},
	{ID: FuturePerfectContinuous, TimeFrame: TimeFrameFuture, DefaultTitle: "Future Perfect Continuous"},
}

// Tenses returns all twelve definitions in timeline order.
func Tenses() []TenseDefinition {
	out := make([]TenseDefinition, len(tenses))
	copy(out, tenses)
	return out
}

// TensesIn returns the definitions belonging to tf, in timeline order.
func TensesIn(tf TimeFrame) []TenseDefinition {
	var out []TenseDefinition
	for _, def := range tenses {
		if def.TimeFrame == tf {
			out = append(out, def)
		}
	}
	return out
}

// Lookup finds the definition for id.
func Lookup(id TenseID) (TenseDefinition, bool) {
	for _, def := range tenses {
		if def.ID == id {
			return def, true
		}
	}
	return TenseDefinition{}, false
}

func (id TenseID) Valid() bool {
	_, ok := Lookup(id)
	return ok
}

// TenseIDs returns the twelve identifiers in timeline order.
func TenseIDs() []TenseID {
	out := make([]TenseID, 0, len(tenses))
	for _, def := range tenses {
		out = append(out, def.ID)
	}
	return out
}
