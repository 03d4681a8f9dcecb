// Package classifier splits Arabic vocabulary into function words and
// content words. Function words (particles, prepositions, pronouns) are
// taught through usage phrases; content words through verse citations.
package classifier

// Kind is the classification of an Arabic token.
type Kind string

const (
	Function Kind = "function"
	Content  Kind = "content"
)

// functionWords is the closed-class token set. Membership is exact string
// match on the bare Arabic form; any token not listed is a content word.
var functionWords = map[string]struct{}{}

func init() {
	tokens := []string{
		// Articles and single-letter particles
		"ال", "و", "ب", "ل", "ف", "ك", "س", "ت",
		// Prepositions
		"في", "من", "إلى", "على", "عن", "مع", "عند", "بين", "بعد", "قبل",
		"تحت", "فوق", "أمام", "وراء", "حول", "خلال", "ضد", "نحو", "دون",
		"سوى", "غير",
		// Particles and connectors
		"ما", "لا", "إن", "أن", "كان", "كانوا", "كانت", "لم", "لن", "قد",
		"قال", "كل", "بعض", "سوف", "لقد", "لكن", "أم", "أو", "بل", "لعل",
		"عسى", "ليت", "كأن", "إذا", "إذ", "لو", "لولا", "حتى", "كي", "لكي",
		// Pronouns
		"هو", "هي", "هم", "هن", "أنت", "أنتم", "أنتن", "أنا", "نحن",
		"إياه", "إياها", "إياهم", "إياهن", "إياك", "إياكم", "إياكن",
		"إياي", "إيانا",
		// Prepositional pronoun compounds
		"لهم", "لها", "له", "لك", "لكم", "لنا", "لي",
		"بهم", "بها", "به", "بك", "بكم", "بكن", "بنا", "بي",
		"فيهم", "فيها", "فيه", "فيك", "فيكم", "فيكن", "فينا",
		"عليهم", "عليها", "عليه", "عليك", "عليكم", "عليكن", "علينا", "علي",
		"عنهم", "عنها", "عنه", "عنك", "عنكم", "عنكن", "عنا", "عني",
		"منهم", "منها", "منه", "منك", "منكم", "منكن", "منا", "مني",
		// Relative pronouns
		"الذي", "الذين", "التي", "اللتان", "اللتين", "اللواتي", "اللاتي", "اللائي",
		// Demonstratives
		"هذا", "هذه", "هؤلاء", "ذلك", "تلك", "أولئك", "ذان", "تان",
		"هنا", "هناك", "هنالك",
		// Interrogatives
		"ماذا", "أين", "كيف", "متى", "لماذا", "أي", "أنى", "كم", "أيان",
		// Conditional and temporal particles
		"لما", "كلما", "بينما", "إلا",
		// Negators
		"ليس", "لات",
	}
	for _, t := range tokens {
		functionWords[t] = struct{}{}
	}
}

// Classify maps an Arabic token to Function or Content. It is total and
// deterministic: unknown tokens are Content.
func Classify(arabic string) Kind {
	if _, ok := functionWords[arabic]; ok {
		return Function
	}
	return Content
}

// IsFunction reports whether the token belongs to the closed class.
func IsFunction(arabic string) bool {
	return Classify(arabic) == Function
}
