package app

import (
	"fmt"

	"ai-quiz-service/internal/domain"
)

// DefaultQuestionCount is how many questions a quiz carries.
const DefaultQuestionCount = 10

type backupTemplate struct {
	question      string // fmt verb takes the topic
	options       [4]string
	correctAnswer int
	explanation   string
}

// The fixed template bank. Templates are topic-agnostic; the topic is only
// spliced into the question text. Cycling is by index modulo bank size.
var backupTemplates = [...]backupTemplate{
	{
		question: "What is the main focus of studying %s?",
		options: [4]string{
			"Historical development",
			"Understanding its principles and applications",
			"Memorizing facts",
			"Cultural impact",
		},
		correctAnswer: 1,
		explanation:   "The main focus of studying any subject is to understand its principles and applications, which enables practical use and deeper comprehension.",
	},
	{
		question: "Which approach is most effective when learning about %s?",
		options: [4]string{
			"Passive reading only",
			"Active research and practice",
			"Avoiding difficult concepts",
			"Memorizing definitions only",
		},
		correctAnswer: 1,
		explanation:   "Active research and practice are the most effective learning approaches as they engage multiple cognitive processes and reinforce understanding.",
	},
	{
		question: "What characterizes modern understanding of %s?",
		options: [4]string{
			"It remains unchanged from historical views",
			"It continues to evolve with new discoveries",
			"It is completely theoretical",
			"It has no practical applications",
		},
		correctAnswer: 1,
		explanation:   "Modern understanding of most subjects continues to evolve as new research, technology, and discoveries provide fresh insights and perspectives.",
	},
	{
		question: "Which statement best describes the importance of %s?",
		options: [4]string{
			"It has limited real-world applications",
			"It provides valuable knowledge and insights",
			"It is only useful for academic purposes",
			"It is outdated and irrelevant",
		},
		correctAnswer: 1,
		explanation:   "The importance of any field of study lies in providing valuable knowledge and insights that can be applied to understand and improve various aspects of life.",
	},
	{
		question: "What is a key benefit of understanding %s?",
		options: [4]string{
			"It requires no effort to learn",
			"It enhances problem-solving abilities",
			"It guarantees immediate success",
			"It eliminates all uncertainties",
		},
		correctAnswer: 1,
		explanation:   "Understanding any subject enhances problem-solving abilities by providing tools, frameworks, and knowledge that can be applied to tackle various challenges.",
	},
	{
		question: "How does %s relate to other fields of study?",
		options: [4]string{
			"It exists in complete isolation",
			"It connects with and influences other areas",
			"It contradicts all other knowledge",
			"It is unrelated to practical applications",
		},
		correctAnswer: 1,
		explanation:   "Most fields of study are interconnected and influence each other, creating a web of knowledge that enhances understanding across disciplines.",
	},
	{
		question: "What is essential for mastering %s?",
		options: [4]string{
			"Avoiding challenging questions",
			"Consistent study and practice",
			"Relying only on basic concepts",
			"Ignoring foundational principles",
		},
		correctAnswer: 1,
		explanation:   "Mastering any subject requires consistent study and practice, which builds understanding gradually and reinforces learning through repetition.",
	},
	{
		question: "Which factor contributes most to expertise in %s?",
		options: [4]string{
			"Natural talent alone",
			"Dedication and continuous learning",
			"Memorizing textbooks",
			"Avoiding difficult problems",
		},
		correctAnswer: 1,
		explanation:   "Expertise in any field comes primarily from dedication and continuous learning, as knowledge and skills develop through sustained effort over time.",
	},
	{
		question: "What makes %s valuable in today's world?",
		options: [4]string{
			"It is purely theoretical",
			"It offers practical solutions and insights",
			"It requires no critical thinking",
			"It has no modern applications",
		},
		correctAnswer: 1,
		explanation:   "The value of any field of study in today's world comes from its ability to offer practical solutions and insights that can address real-world challenges.",
	},
	{
		question: "How should one approach learning %s?",
		options: [4]string{
			"With a passive mindset",
			"With curiosity and critical thinking",
			"By avoiding complex concepts",
			"By memorizing without understanding",
		},
		correctAnswer: 1,
		explanation:   "Effective learning requires curiosity and critical thinking, which encourage deeper engagement with the material and better retention of knowledge.",
	},
}

// GenerateBackupQuestions produces count template questions for the topic. It
// is pure and fully deterministic: the same topic and count always yield the
// same questions, including the correct-answer index, so it can serve as the
// terminal fallback. Every question satisfies the shape invariant by
// construction.
func GenerateBackupQuestions(topic string, count int) []domain.Question {
	if count <= 0 {
		count = DefaultQuestionCount
	}

	questions := make([]domain.Question, count)
	for i := range questions {
		t := backupTemplates[i%len(backupTemplates)]
		questions[i] = domain.Question{
			ID:            i + 1,
			Question:      fmt.Sprintf(t.question, topic),
			Options:       append([]string(nil), t.options[:]...),
			CorrectAnswer: t.correctAnswer,
			Explanation:   t.explanation,
		}
	}
	return questions
}
