package app

import "quizmaster/internal/domain"

// StarterQuestions is seeded into an empty bank: ten per difficulty, enough for a full session.
func StarterQuestions() []domain.Question {
	return []domain.Question{
		q(domain.Easy, "What is 2 + 2?", 1, "3", "4", "5", "6"),
		q(domain.Easy, "What is the capital of France?", 2, "London", "Berlin", "Paris", "Madrid"),
		q(domain.Easy, "Which planet is closest to the sun?", 2, "Venus", "Mars", "Mercury", "Earth"),
		q(domain.Easy, "How many continents are there?", 2, "5", "6", "7", "8"),
		q(domain.Easy, "What is the largest ocean on Earth?", 3, "Atlantic", "Indian", "Arctic", "Pacific"),
		q(domain.Easy, "How many days are there in a week?", 1, "5", "7", "6", "8"),
		q(domain.Easy, "What color do you get by mixing blue and yellow?", 0, "Green", "Purple", "Orange", "Brown"),
		q(domain.Easy, "How many legs does a spider have?", 1, "6", "8", "10", "12"),
		q(domain.Easy, "What is 10 minus 3?", 3, "5", "6", "8", "7"),
		q(domain.Easy, "Which animal is known as the King of the Jungle?", 0, "Lion", "Tiger", "Elephant", "Bear"),

		q(domain.Medium, "What is the square root of 64?", 2, "4", "6", "8", "10"),
		q(domain.Medium, "Which planet is known as the Red Planet?", 1, "Venus", "Mars", "Jupiter", "Saturn"),
		q(domain.Medium, "What is the chemical symbol for water?", 0, "H2O", "CO2", "NaCl", "O2"),
		q(domain.Medium, "Who wrote 'Romeo and Juliet'?", 1, "Charles Dickens", "William Shakespeare", "Jane Austen", "Mark Twain"),
		q(domain.Medium, "What is the capital of Japan?", 2, "Beijing", "Seoul", "Tokyo", "Bangkok"),
		q(domain.Medium, "What gas do plants absorb from the atmosphere?", 2, "Oxygen", "Nitrogen", "Carbon Dioxide", "Hydrogen"),
		q(domain.Medium, "What is 15 multiplied by 4?", 1, "50", "60", "70", "80"),
		q(domain.Medium, "Which is the longest river in the world?", 0, "Nile", "Amazon", "Yangtze", "Mississippi"),
		q(domain.Medium, "How many sides does a hexagon have?", 3, "5", "8", "7", "6"),
		q(domain.Medium, "What is the freezing point of water in Celsius?", 0, "0", "32", "100", "-10"),

		q(domain.Hard, "What is the chemical symbol for Gold?", 2, "Go", "Gd", "Au", "Ag"),
		q(domain.Hard, "Who painted the Mona Lisa?", 2, "Vincent van Gogh", "Pablo Picasso", "Leonardo da Vinci", "Michelangelo"),
		q(domain.Hard, "What is the largest planet in our solar system?", 2, "Earth", "Saturn", "Jupiter", "Neptune"),
		q(domain.Hard, "Which element has the atomic number 1?", 1, "Helium", "Hydrogen", "Oxygen", "Carbon"),
		q(domain.Hard, "In which year did World War II end?", 1, "1943", "1945", "1947", "1950"),
		q(domain.Hard, "What is the speed of light in vacuum (km/s, approx.)?", 3, "150,000", "200,000", "250,000", "300,000"),
		q(domain.Hard, "Who proposed the theory of general relativity?", 0, "Albert Einstein", "Isaac Newton", "Niels Bohr", "Max Planck"),
		q(domain.Hard, "What is the smallest prime number?", 1, "1", "2", "3", "5"),
		q(domain.Hard, "Which organ produces insulin?", 2, "Liver", "Kidney", "Pancreas", "Spleen"),
		q(domain.Hard, "What is the hardest natural substance?", 3, "Quartz", "Granite", "Iron", "Diamond"),
	}
}

func q(d domain.Difficulty, text string, correct int, a, b, c, e string) domain.Question {
	return domain.Question{
		Text:       text,
		Options:    [domain.OptionCount]string{a, b, c, e},
		Correct:    correct,
		Difficulty: d,
	}
}
