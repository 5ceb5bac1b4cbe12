package catalog

import "vodkaflix/internal/media"

// builtinTitles is the curated catalog. IDs are TMDB identifiers, which the
// embed providers key on.
var builtinTitles = []media.Title{
	{
		ID: "1291608", Name: "Dhurandhar", Year: 2025, Duration: "3h 32m", Rating: "PG-13", MatchScore: 98,
		Genres:      []string{"Action", "Thriller"},
		Description: "In the early 2000s, an Indian undercover operative infiltrates Karachi's underworld, breaking into its inner circle to dismantle a violent nexus from within.",
	},
	{
		ID: "299534", Name: "Avengers: Endgame", Year: 2019, Duration: "3h 1m", Rating: "PG-13", MatchScore: 99,
		Genres:      []string{"Action", "Sci-Fi", "Adventure"},
		Description: "After the devastating events of Infinity War, the universe is in ruins. With the help of remaining allies, the Avengers assemble once more in order to reverse Thanos' actions and restore balance to the universe.",
	},
	{
		ID: "299536", Name: "Avengers: Infinity War", Year: 2018, Duration: "2h 29m", Rating: "PG-13", MatchScore: 98,
		Genres:      []string{"Action", "Sci-Fi", "Adventure"},
		Description: "As the Avengers and their allies have continued to protect the world from threats too large for any one hero to handle, a new danger has emerged from the cosmic shadows: Thanos.",
	},
	{
		ID: "634649", Name: "Spider-Man: No Way Home", Year: 2021, Duration: "2h 28m", Rating: "PG-13", MatchScore: 98,
		Genres:      []string{"Action", "Sci-Fi", "Adventure"},
		Description: "Peter Parker is unmasked and no longer able to separate his normal life from the high-stakes of being a super-hero. When he asks for help from Doctor Strange the stakes become even more dangerous.",
	},
	{
		ID: "1726", Name: "Iron Man", Year: 2008, Duration: "2h 6m", Rating: "PG-13", MatchScore: 95,
		Genres:      []string{"Action", "Sci-Fi"},
		Description: "After being held captive in an Afghan cave, billionaire engineer Tony Stark creates a unique weaponized suit of armor to fight evil.",
	},
	{
		ID: "284054", Name: "Black Panther", Year: 2018, Duration: "2h 14m", Rating: "PG-13", MatchScore: 96,
		Genres:      []string{"Action", "Sci-Fi", "Adventure"},
		Description: "King T'Challa returns home to the isolated, technologically advanced African nation of Wakanda to serve as his country's new leader.",
	},
	{
		ID: "283995", Name: "Guardians of the Galaxy Vol. 2", Year: 2017, Duration: "2h 16m", Rating: "PG-13", MatchScore: 94,
		Genres:      []string{"Action", "Sci-Fi", "Comedy"},
		Description: "The Guardians must fight to keep their newfound family together as they unravel the mysteries of Peter Quill's true parentage.",
	},
	{
		ID: "85271", Name: "WandaVision", Year: 2021, Duration: "1 Season", Rating: "TV-14", MatchScore: 92,
		Kind: media.Series, TotalSeasons: 1,
		Genres:      []string{"Sci-Fi", "Drama", "Mystery"},
		Description: "Wanda Maximoff and Vision—two super-powered beings living idealized suburban lives—begin to suspect that everything is not as it seems.",
	},
	{
		ID: "84958", Name: "Loki", Year: 2021, Duration: "2 Seasons", Rating: "TV-14", MatchScore: 94,
		Kind: media.Series, TotalSeasons: 2,
		Genres:      []string{"Sci-Fi", "Fantasy", "Adventure"},
		Description: "The mercurial villain Loki resumes his role as the God of Mischief in a new series that takes place after the events of 'Avengers: Endgame'.",
	},
	{
		ID: "557", Name: "Spider-Man", Year: 2002, Duration: "2h 1m", Rating: "PG-13", MatchScore: 93,
		Genres:      []string{"Action", "Fantasy"},
		Description: "After being bitten by a genetically altered spider, nerdish high school student Peter Parker is endowed with amazing powers.",
	},
	{
		ID: "558", Name: "Spider-Man 2", Year: 2004, Duration: "2h 7m", Rating: "PG-13", MatchScore: 96,
		Genres:      []string{"Action", "Fantasy"},
		Description: "Peter Parker is dissatisfied with life when he loses his job, the love of his life, Mary Jane, and his powers. Amid all his chaos, he must fight Doctor Octavius.",
	},
	{
		ID: "36657", Name: "X-Men", Year: 2000, Duration: "1h 44m", Rating: "PG-13", MatchScore: 90,
		Genres:      []string{"Action", "Sci-Fi"},
		Description: "Two mutants, Wolverine and Rogue, come into a conflict between two groups that have radically different approaches to bringing about the acceptance of mutant-kind.",
	},
	{
		ID: "155", Name: "The Dark Knight", Year: 2008, Duration: "2h 32m", Rating: "PG-13", MatchScore: 99,
		Genres:      []string{"Action", "Crime", "Drama"},
		Description: "Batman raises the stakes in his war on crime. With the help of Lt. Jim Gordon and DA Harvey Dent, Batman sets out to dismantle the remaining criminal organizations that plague the streets.",
	},
	{
		ID: "475557", Name: "Joker", Year: 2019, Duration: "2h 2m", Rating: "R", MatchScore: 97,
		Genres:      []string{"Crime", "Drama", "Thriller"},
		Description: "During the 1980s, a failed stand-up comedian is driven insane and turns to a life of crime and chaos in Gotham City while becoming an infamous psychopathic crime figure.",
	},
	{
		ID: "49521", Name: "Man of Steel", Year: 2013, Duration: "2h 23m", Rating: "PG-13", MatchScore: 90,
		Genres:      []string{"Action", "Sci-Fi", "Adventure"},
		Description: "An alien child is evacuated from his dying world and sent to Earth to live among humans. His peace is threatened when other survivors of his home planet invade Earth.",
	},
	{
		ID: "209112", Name: "Batman v Superman: Dawn of Justice", Year: 2016, Duration: "2h 32m", Rating: "PG-13", MatchScore: 88,
		Genres:      []string{"Action", "Sci-Fi"},
		Description: "Fearing the actions of a god-like Super Hero left unchecked, Gotham City's own formidable, forceful vigilante takes on Metropolis's most revered, modern-day savior.",
	},
	{
		ID: "297761", Name: "Suicide Squad", Year: 2016, Duration: "2h 3m", Rating: "PG-13", MatchScore: 86,
		Genres:      []string{"Action", "Crime", "Fantasy"},
		Description: "From DC Comics comes the Suicide Squad, an antihero team of incarcerated supervillains who act as deniable assets for the United States government.",
	},
	{
		ID: "297762", Name: "Wonder Woman", Year: 2017, Duration: "2h 21m", Rating: "PG-13", MatchScore: 93,
		Genres:      []string{"Action", "Adventure", "Fantasy"},
		Description: "An Amazon princess comes to the world of Man in the grips of the First World War to confront the forces of evil and bring an end to human conflict.",
	},
	{
		ID: "141052", Name: "Justice League", Year: 2017, Duration: "2h 0m", Rating: "PG-13", MatchScore: 89,
		Genres:      []string{"Action", "Sci-Fi", "Adventure"},
		Description: "Fueled by his restored faith in humanity and inspired by Superman's selfless act, Bruce Wayne enlists the help of his newfound ally, Diana Prince, to face an even greater enemy.",
	},
	{
		ID: "297802", Name: "Aquaman", Year: 2018, Duration: "2h 23m", Rating: "PG-13", MatchScore: 92,
		Genres:      []string{"Action", "Adventure", "Fantasy"},
		Description: "Once home to the most advanced civilization on Earth, Atlantis is now an underwater kingdom ruled by the power-hungry King Orm. With a vast army at his disposal, Orm plans to conquer the remaining oceanic people and then the surface world.",
	},
	{
		ID: "287947", Name: "Shazam!", Year: 2019, Duration: "2h 12m", Rating: "PG-13", MatchScore: 91,
		Genres:      []string{"Action", "Comedy", "Fantasy"},
		Description: "A boy is given the ability to become an adult superhero in times of need with a single magic word.",
	},
	{
		ID: "791373", Name: "Zack Snyder's Justice League", Year: 2021, Duration: "4h 2m", Rating: "R", MatchScore: 95,
		Genres:      []string{"Action", "Adventure", "Fantasy"},
		Description: "Determined to ensure Superman's ultimate sacrifice was not in vain, Bruce Wayne aligns forces with Diana Prince with plans to recruit a team of metahumans to protect the world from an approaching threat of catastrophic proportions.",
	},
	{
		ID: "436270", Name: "Black Adam", Year: 2022, Duration: "2h 5m", Rating: "PG-13", MatchScore: 90,
		Genres:      []string{"Action", "Fantasy", "Sci-Fi"},
		Description: "Nearly 5,000 years after he was bestowed with the almighty powers of the Egyptian gods—and imprisoned just as quickly—Black Adam is freed from his earthly tomb, ready to unleash his unique form of justice on the modern world.",
	},
	{
		ID: "414906", Name: "The Batman", Year: 2022, Duration: "2h 56m", Rating: "PG-13", MatchScore: 94,
		Genres:      []string{"Action", "Crime", "Drama"},
		Description: "In his second year of fighting crime, Batman uncovers corruption in Gotham City that connects to his own family while facing a serial killer known as the Riddler.",
	},
	{
		ID: "1669", Name: "Constantine", Year: 2005, Duration: "2h 1m", Rating: "R", MatchScore: 92,
		Genres:      []string{"Fantasy", "Horror", "Action"},
		Description: "John Constantine is a man who has literally been to hell and back. When he teams up with skeptical policewoman Angela Dodson to solve the mysterious suicide of her twin sister, their investigation takes them through the world of demons and angels.",
	},
	{
		ID: "1069279", Name: "Superman", Year: 2025, Duration: "Coming Soon", Rating: "PG-13", MatchScore: 100,
		Genres:      []string{"Action", "Sci-Fi"},
		Description: "Follows the titular superhero as he reconciles his heritage with his human upbringing. He is the embodiment of truth, justice and the American way in a world that views kindness as old-fashioned.",
	},
	{
		ID: "1003596", Name: "The Fantastic Four: First Steps", Year: 2025, Duration: "Coming Soon", Rating: "PG-13", MatchScore: 99,
		Genres:      []string{"Action", "Sci-Fi"},
		Description: "The Fantastic Four face their most daunting challenge yet as they must balance their lives as heroes with the strength of their family bond.",
	},
	{
		ID: "1412", Name: "Arrow", Year: 2012, Duration: "8 Seasons", Rating: "TV-14", MatchScore: 95,
		Kind: media.Series, TotalSeasons: 8,
		Genres:      []string{"Action", "Adventure", "Crime"},
		Description: "Spoiled billionaire playboy Oliver Queen is missing and presumed dead when his yacht is lost at sea. He returns five years later a changed man, determined to clean up the city as a hooded vigilante.",
	},
	{
		ID: "60735", Name: "The Flash", Year: 2014, Duration: "9 Seasons", Rating: "TV-14", MatchScore: 94,
		Kind: media.Series, TotalSeasons: 9,
		Genres:      []string{"Drama", "Sci-Fi", "Action"},
		Description: "After being struck by lightning, Barry Allen wakes up from his coma to discover he's been given the power of super speed, becoming the next Flash, fighting crime in Central City.",
	},
	{
		ID: "62688", Name: "Supergirl", Year: 2015, Duration: "6 Seasons", Rating: "TV-14", MatchScore: 92,
		Kind: media.Series, TotalSeasons: 6,
		Genres:      []string{"Action", "Sci-Fi", "Adventure"},
		Description: "Twenty-four-year-old Kara Zor-El, who was taken in by the Danvers family when she was 13 after being sent away from Krypton, must learn to embrace her new powers.",
	},
	{
		ID: "95057", Name: "Superman & Lois", Year: 2021, Duration: "4 Seasons", Rating: "TV-14", MatchScore: 96,
		Kind: media.Series, TotalSeasons: 4,
		Genres:      []string{"Action", "Sci-Fi", "Drama"},
		Description: "After years of facing megalomaniacal supervillains, monsters wreaking havoc on Metropolis, and alien invaders intent on wiping out the human race, The Man of Steel aka Clark Kent and comic books' most famous journalist, Lois Lane, come face to face with one of their greatest challenges ever - dealing with all the stress, pressures and complexities that come with being working parents in today's society.",
	},
	{
		ID: "70523", Name: "Dark", Year: 2017, Duration: "3 Seasons", Rating: "TV-MA", MatchScore: 99,
		Kind: media.Series, TotalSeasons: 3,
		Genres:      []string{"Sci-Fi", "Mystery", "Drama"},
		Description: "A missing child causes four families to help each other for answers. What they could not imagine is that this mystery would be connected to innumerable other secrets of the small town.",
	},
	{
		ID: "1622", Name: "Supernatural", Year: 2005, Duration: "15 Seasons", Rating: "TV-14", MatchScore: 98,
		Kind: media.Series, TotalSeasons: 15,
		Genres:      []string{"Drama", "Mystery", "Sci-Fi"},
		Description: "Two brothers follow their father's footsteps as hunters, fighting evil supernatural beings of many kinds, including monsters, demons and gods that roam the earth.",
	},
	{
		ID: "18165", Name: "The Vampire Diaries", Year: 2009, Duration: "8 Seasons", Rating: "TV-14", MatchScore: 96,
		Kind: media.Series, TotalSeasons: 8,
		Genres:      []string{"Drama", "Fantasy", "Horror"},
		Description: "The story of two vampire brothers obsessed with the same girl, who bears a striking resemblance to the beautiful but ruthless vampire they knew and loved in 1864.",
	},
	{
		ID: "48866", Name: "The 100", Year: 2014, Duration: "7 Seasons", Rating: "TV-14", MatchScore: 95,
		Kind: media.Series, TotalSeasons: 7,
		Genres:      []string{"Sci-Fi", "Drama", "Action"},
		Description: "Set ninety-seven years after a nuclear war has destroyed civilization, when a spaceship housing humanity's lone survivors sends one hundred juvenile delinquents back to Earth.",
	},
	{
		ID: "1668", Name: "Friends", Year: 1994, Duration: "10 Seasons", Rating: "TV-14", MatchScore: 100,
		Kind: media.Series, TotalSeasons: 10,
		Genres:      []string{"Comedy", "Drama"},
		Description: "Six young people, on their own and struggling to survive in the real world, find the companionship, comfort and support they get from each other to be the perfect antidote to the pressures of life.",
	},
	{
		ID: "20453", Name: "3 Idiots", Year: 2009, Duration: "2h 50m", Rating: "PG-13", MatchScore: 98,
		Genres:      []string{"Comedy", "Drama"},
		Description: "In college, Farhan and Raju form a great bond with Rancho due to his positive and refreshing outlook to life. Years later, a bet gives them a chance to look for their long-lost friend whose existence seems rather elusive.",
	},
	{
		ID: "1265", Name: "Bridge to Terabithia", Year: 2007, Duration: "1h 36m", Rating: "PG", MatchScore: 94,
		Genres:      []string{"Adventure", "Drama", "Family"},
		Description: "Jesse Aarons trained all summer to become the fastest runner in school, so he's very upset when newcomer Leslie Burke outruns him and everyone else.",
	},
	{
		ID: "27205", Name: "Inception", Year: 2010, Duration: "2h 28m", Rating: "PG-13", MatchScore: 96,
		Genres:      []string{"Action", "Sci-Fi"},
		Description: "A thief who steals corporate secrets through the use of dream-sharing technology is given the inverse task of planting an idea into the mind of a C.E.O.",
	},
	{
		ID: "693134", Name: "Dune: Part Two", Year: 2024, Duration: "2h 46m", Rating: "PG-13", MatchScore: 98,
		Genres:      []string{"Sci-Fi", "Adventure"},
		Description: "Paul Atreides unites with Chani and the Fremen while on a warpath of revenge against the conspirators who destroyed his family.",
	},
	{
		ID: "94997", Name: "House of the Dragon", Year: 2022, Duration: "2 Seasons", Rating: "TV-MA", MatchScore: 95,
		Kind: media.Series, TotalSeasons: 2,
		Genres:      []string{"Action", "Fantasy"},
		Description: "An internal succession war within House Targaryen at the height of its power, 172 years before the birth of Daenerys Targaryen.",
	},
	{
		ID: "66732", Name: "Stranger Things", Year: 2016, Duration: "5 Seasons", Rating: "TV-14", MatchScore: 98,
		Kind: media.Series, TotalSeasons: 5,
		Genres:      []string{"Sci-Fi", "Horror"},
		Description: "When a young boy vanishes, a small town uncovers a mystery involving secret experiments, terrifying supernatural forces, and one strange little girl.",
	},
	{
		ID: "1396", Name: "Breaking Bad", Year: 2008, Duration: "5 Seasons", Rating: "TV-MA", MatchScore: 99,
		Kind: media.Series, TotalSeasons: 5,
		Genres:      []string{"Crime", "Drama"},
		Description: "A high school chemistry teacher turned meth producer navigates the dangers of the criminal underworld to secure his family's future.",
	},
	{
		ID: "76600", Name: "Avatar: The Way of Water", Year: 2022, Duration: "3h 12m", Rating: "PG-13", MatchScore: 95,
		Genres:      []string{"Sci-Fi", "Adventure"},
		Description: "Jake Sully lives with his newfound family formed on the extrasolar moon Pandora. Once a familiar threat returns to finish what was previously started, Jake must work with Neytiri and the army of the Na'vi race to protect their home.",
	},
}
