package classifier

// firstPersonPronouns are matched as whole words, case-insensitive.
var firstPersonPronouns = map[string]bool{
	"i":   true,
	"we":  true,
	"my":  true,
	"our": true,
	"me":  true,
	"us":  true,
}

// chargedWords is a fixed lexicon of emotionally loaded vocabulary.
var chargedWords = map[string]bool{
	"passionate": true,
	"excited":    true,
	"love":       true,
	"amazing":    true,
	"incredible": true,
	"awesome":    true,
}

// ToneFamily buckets a span's overall voice.
type ToneFamily string

const (
	TonePersonal     ToneFamily = "personal"
	ToneProfessional ToneFamily = "professional"
	ToneCasual       ToneFamily = "casual"
	ToneFormal       ToneFamily = "formal"
	ToneNone         ToneFamily = ""
)

// toneFamilyOrder fixes the voting order: the first family with a keyword
// present in the span wins.
var toneFamilyOrder = []ToneFamily{TonePersonal, ToneProfessional, ToneCasual, ToneFormal}

var toneFamilyKeywords = map[ToneFamily][]string{
	TonePersonal:     {"i", "we", "my", "our", "me", "us"},
	ToneProfessional: {"therefore", "however", "furthermore", "consequently", "moreover", "accordingly"},
	ToneCasual:       {"really", "pretty", "kinda", "stuff", "awesome", "cool", "btw"},
	ToneFormal:       {"shall", "hereby", "pursuant", "notwithstanding", "whereas", "herein"},
}
