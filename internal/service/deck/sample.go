package deck

import "github.com/heartmarshall/studybuddy/internal/domain"

// sampleDeck is used when the card source is unavailable. It holds exactly
// one card for every subject and difficulty pair.
var sampleDeck = []domain.Card{
	{Subject: domain.SubjectMath, Difficulty: domain.DifficultyEasy,
		Question: "What is 7 x 8?",
		Answer:   "56"},
	{Subject: domain.SubjectMath, Difficulty: domain.DifficultyMedium,
		Question: "What is the Pythagorean theorem?",
		Answer:   "a² + b² = c², where c is the hypotenuse of a right triangle."},
	{Subject: domain.SubjectMath, Difficulty: domain.DifficultyHard,
		Question: "What is the quadratic formula?",
		Answer:   "x = [-b ± √(b² - 4ac)] / (2a)"},

	{Subject: domain.SubjectEnglish, Difficulty: domain.DifficultyEasy,
		Question: "What is the plural of 'child'?",
		Answer:   "Children"},
	{Subject: domain.SubjectEnglish, Difficulty: domain.DifficultyMedium,
		Question: "What is a metaphor?",
		Answer:   "A figure of speech that describes an object or action in a way that isn't literally true."},
	{Subject: domain.SubjectEnglish, Difficulty: domain.DifficultyHard,
		Question: "What are the three main types of irony?",
		Answer:   "Verbal, situational, and dramatic irony."},

	{Subject: domain.SubjectSpanish, Difficulty: domain.DifficultyEasy,
		Question: "How do you say 'hello' in Spanish?",
		Answer:   "Hola"},
	{Subject: domain.SubjectSpanish, Difficulty: domain.DifficultyMedium,
		Question: "How do you say 'I am hungry' in Spanish?",
		Answer:   "Tengo hambre"},
	{Subject: domain.SubjectSpanish, Difficulty: domain.DifficultyHard,
		Question: "What is the difference between 'ser' and 'estar'?",
		Answer:   "Both mean 'to be', but 'ser' is for permanent traits and 'estar' for temporary states."},

	{Subject: domain.SubjectGerman, Difficulty: domain.DifficultyEasy,
		Question: "How do you say 'thank you' in German?",
		Answer:   "Danke"},
	{Subject: domain.SubjectGerman, Difficulty: domain.DifficultyMedium,
		Question: "What are the three German articles?",
		Answer:   "Der (masculine), die (feminine), das (neuter)"},
	{Subject: domain.SubjectGerman, Difficulty: domain.DifficultyHard,
		Question: "Which case follows the preposition 'mit'?",
		Answer:   "The dative case."},

	{Subject: domain.SubjectScience, Difficulty: domain.DifficultyEasy,
		Question: "What are the three states of matter?",
		Answer:   "Solid, liquid, and gas."},
	{Subject: domain.SubjectScience, Difficulty: domain.DifficultyMedium,
		Question: "What is photosynthesis?",
		Answer:   "The process by which plants convert light energy into chemical energy."},
	{Subject: domain.SubjectScience, Difficulty: domain.DifficultyHard,
		Question: "What does Newton's second law state?",
		Answer:   "Force equals mass times acceleration (F = ma)."},

	{Subject: domain.SubjectHistory, Difficulty: domain.DifficultyEasy,
		Question: "Who was the first president of the United States?",
		Answer:   "George Washington"},
	{Subject: domain.SubjectHistory, Difficulty: domain.DifficultyMedium,
		Question: "When did World War II end?",
		Answer:   "1945"},
	{Subject: domain.SubjectHistory, Difficulty: domain.DifficultyHard,
		Question: "Which treaty ended the Thirty Years' War?",
		Answer:   "The Peace of Westphalia (1648)."},

	{Subject: domain.SubjectOther, Difficulty: domain.DifficultyEasy,
		Question: "How many days are in a leap year?",
		Answer:   "366"},
	{Subject: domain.SubjectOther, Difficulty: domain.DifficultyMedium,
		Question: "What is the capital of Australia?",
		Answer:   "Canberra"},
	{Subject: domain.SubjectOther, Difficulty: domain.DifficultyHard,
		Question: "What is the chemical symbol for tungsten?",
		Answer:   "W"},
}

// SampleDeck returns a copy of the fallback deck, restricted to subject when
// it is not nil.
func SampleDeck(subject *domain.Subject) []domain.Card {
	out := make([]domain.Card, 0, len(sampleDeck))
	for _, c := range sampleDeck {
		if subject != nil && c.Subject != *subject {
			continue
		}
		out = append(out, c)
	}
	return out
}
