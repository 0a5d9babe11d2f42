package catalog

// Seed returns the default question set. The same rows ship as a database
// migration; this copy feeds the in-memory catalog when no database is
// configured.
func Seed() []Question {
	return []Question{
		{Text: "lied about my age", Category: CategoryFunny, Difficulty: DifficultyEasy},
		{Text: "pretended to be sick to skip school/work", Category: CategoryFunny, Difficulty: DifficultyEasy},
		{Text: "eaten food that fell on the floor", Category: CategoryFunny, Difficulty: DifficultyEasy},
		{Text: "danced in front of a mirror", Category: CategoryFunny, Difficulty: DifficultyEasy},
		{Text: "sung in the shower", Category: CategoryFunny, Difficulty: DifficultyEasy},
		{Text: "talked to myself", Category: CategoryFunny, Difficulty: DifficultyEasy},
		{Text: "pretended to laugh at a joke I didn't understand", Category: CategoryFunny, Difficulty: DifficultyMedium},
		{Text: "googled my own name", Category: CategoryFunny, Difficulty: DifficultyMedium},
		{Text: "cried during a movie", Category: CategoryFunny, Difficulty: DifficultyMedium},
		{Text: "stolen something from a hotel", Category: CategoryFunny, Difficulty: DifficultyMedium},

		{Text: "questioned my life choices", Category: CategoryDeep, Difficulty: DifficultyMedium},
		{Text: "had a panic attack", Category: CategoryDeep, Difficulty: DifficultyHard},
		{Text: "lied to my best friend", Category: CategoryDeep, Difficulty: DifficultyMedium},
		{Text: "regretted a major decision", Category: CategoryDeep, Difficulty: DifficultyHard},
		{Text: "felt completely lost in life", Category: CategoryDeep, Difficulty: DifficultyHard},
		{Text: "pretended to be happy when I wasn't", Category: CategoryDeep, Difficulty: DifficultyMedium},
		{Text: "hurt someone I care about", Category: CategoryDeep, Difficulty: DifficultyHard},
		{Text: "questioned my beliefs", Category: CategoryDeep, Difficulty: DifficultyMedium},

		{Text: "danced on a table", Category: CategoryParty, Difficulty: DifficultyMedium},
		{Text: "kissed a stranger", Category: CategoryParty, Difficulty: DifficultyHard},
		{Text: "streaked", Category: CategoryParty, Difficulty: DifficultyHard},
		{Text: "drank before noon", Category: CategoryParty, Difficulty: DifficultyEasy},
		{Text: "been kicked out of a bar", Category: CategoryParty, Difficulty: DifficultyHard},
		{Text: "made out in public", Category: CategoryParty, Difficulty: DifficultyMedium},
		{Text: "blacked out", Category: CategoryParty, Difficulty: DifficultyHard},
		{Text: "woken up in a strange place", Category: CategoryParty, Difficulty: DifficultyHard},
		{Text: "danced on a bar", Category: CategoryParty, Difficulty: DifficultyHard},
		{Text: "had a one-night stand", Category: CategoryParty, Difficulty: DifficultyHard},

		{Text: "been in love", Category: CategoryRomantic, Difficulty: DifficultyEasy},
		{Text: "had my heart broken", Category: CategoryRomantic, Difficulty: DifficultyMedium},
		{Text: "fallen in love at first sight", Category: CategoryRomantic, Difficulty: DifficultyMedium},
		{Text: "dated someone I met online", Category: CategoryRomantic, Difficulty: DifficultyMedium},
		{Text: "been on a blind date", Category: CategoryRomantic, Difficulty: DifficultyMedium},
		{Text: "kissed someone in the rain", Category: CategoryRomantic, Difficulty: DifficultyMedium},
		{Text: "written a love letter", Category: CategoryRomantic, Difficulty: DifficultyEasy},
		{Text: "been cheated on", Category: CategoryRomantic, Difficulty: DifficultyHard},
		{Text: "cheated on someone", Category: CategoryRomantic, Difficulty: DifficultyHard},
		{Text: "proposed or been proposed to", Category: CategoryRomantic, Difficulty: DifficultyHard},

		{Text: "gone skinny dipping", Category: CategoryWild, Difficulty: DifficultyHard},
		{Text: "had a threesome", Category: CategoryWild, Difficulty: DifficultyHard},
		{Text: "been arrested", Category: CategoryWild, Difficulty: DifficultyHard},
		{Text: "stolen something", Category: CategoryWild, Difficulty: DifficultyHard},
		{Text: "been in a fight", Category: CategoryWild, Difficulty: DifficultyHard},
		{Text: "broken a bone", Category: CategoryWild, Difficulty: DifficultyMedium},
		{Text: "gotten a tattoo", Category: CategoryWild, Difficulty: DifficultyMedium},
		{Text: "gotten a piercing", Category: CategoryWild, Difficulty: DifficultyMedium},
		{Text: "been to a strip club", Category: CategoryWild, Difficulty: DifficultyHard},
		{Text: "done drugs", Category: CategoryWild, Difficulty: DifficultyHard},

		{Text: "traveled alone", Category: CategoryGeneral, Difficulty: DifficultyMedium},
		{Text: "been on TV", Category: CategoryGeneral, Difficulty: DifficultyHard},
		{Text: "met a celebrity", Category: CategoryGeneral, Difficulty: DifficultyHard},
		{Text: "been in a car accident", Category: CategoryGeneral, Difficulty: DifficultyMedium},
		{Text: "broken something expensive", Category: CategoryGeneral, Difficulty: DifficultyEasy},
		{Text: "been to a concert", Category: CategoryGeneral, Difficulty: DifficultyEasy},
		{Text: "been on a plane", Category: CategoryGeneral, Difficulty: DifficultyEasy},
		{Text: "been to another country", Category: CategoryGeneral, Difficulty: DifficultyMedium},
		{Text: "learned a second language", Category: CategoryGeneral, Difficulty: DifficultyMedium},
		{Text: "run a marathon", Category: CategoryGeneral, Difficulty: DifficultyHard},
		{Text: "been skydiving", Category: CategoryGeneral, Difficulty: DifficultyHard},
		{Text: "been bungee jumping", Category: CategoryGeneral, Difficulty: DifficultyHard},
		{Text: "been camping", Category: CategoryGeneral, Difficulty: DifficultyEasy},
		{Text: "been fishing", Category: CategoryGeneral, Difficulty: DifficultyEasy},
		{Text: "been hunting", Category: CategoryGeneral, Difficulty: DifficultyMedium},
	}
}
