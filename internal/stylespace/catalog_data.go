package stylespace

// catalogOrder fixes the canonical catalog iteration order. Tie-breaking in
// nearest-neighbor and max-contrast scans depends on it.
var catalogOrder = []string{
	"hemingway",
	"de_sade",
	"le_guin",
	"didion",
	"lovecraft",
	"borges",
	"murakami",
	"marquez",
	"kafka",
	"shonagon",
	"lispector",
}

// authorCatalog is the curated set of 11 author style entries. The numeric
// coordinates are hand-tuned; changing one changes every distance, blend and
// neighbor result downstream.
var authorCatalog = map[string]AuthorEntry{

	"hemingway": {
		ID:             "hemingway",
		DisplayName:    "Hemingway-esque",
		LanguageOrigin: "English (American)",
		Coordinates: StylePoint{
			SyntacticDensity:    0.10,
			SensoryConcreteness: 0.90,
			OrnamentalRegister:  0.05,
			TensionVisibility:   0.10,
			TensionTemporality:  0.25,
			RealityStability:    0.90,
			Interiority:         0.15,
			TemporalMode:        0.20,
		},
		SignatureMoves: []string{
			"Iceberg theory — emotional weight carried by omission",
			"Paratactic 'and' conjunction chains",
			"Dialogue carrying subtext the narrator won't state",
			"Concrete nouns, active verbs, minimal adjectives",
			"Short paragraphs as rhythmic percussion",
		},
		TextVocabulary: TextVocabulary{
			Conjunctions:     []string{"and", "but", "then"},
			SentenceStarters: []string{"He", "She", "It was", "There was", "The"},
			Forbidden:        []string{"very", "really", "beautiful", "magnificent", "incredible", "amazing"},
			Register:         "Anglo-Saxon monosyllabic preference",
			ParagraphRhythm:  "short-short-short-medium-short",
		},
		ImageVocabulary: ImageVocabulary{
			Keywords: []string{
				"stark composition", "high negative-space ratio",
				"single subject isolation", "hard directional light",
				"minimal props", "environmental realism",
				"unflinching gaze", "dust and daylight",
			},
			ColorPalette: []string{"ochre", "bone white", "dried blood", "sun-bleached", "khaki", "deep shadow"},
			CompositionalRules: []string{
				"Subject-to-negative-space ratio minimum 1:3",
				"Single dominant light source at 45° elevation",
				"No decorative elements in frame",
				"Horizon line in lower third",
			},
		},
	},

	"de_sade": {
		ID:             "de_sade",
		DisplayName:    "Marquis de Sade-esque",
		LanguageOrigin: "French",
		Coordinates: StylePoint{
			SyntacticDensity:    0.95,
			SensoryConcreteness: 0.50,
			OrnamentalRegister:  0.90,
			TensionVisibility:   0.95,
			TensionTemporality:  0.80,
			RealityStability:    0.60,
			Interiority:         0.20,
			TemporalMode:        0.90,
		},
		SignatureMoves: []string{
			"Exhaustive enumeration — every permutation cataloged",
			"Philosophical monologue embedded in extreme scenario",
			"Bodies as philosophical instruments, not psychological subjects",
			"Nested subordination mirroring power hierarchies",
			"Transgressive content delivered in aristocratic register",
		},
		TextVocabulary: TextVocabulary{
			Conjunctions:     []string{"moreover", "furthermore", "notwithstanding", "whereupon", "inasmuch as"},
			SentenceStarters: []string{"It is necessary that", "One must observe", "Let us now consider", "The principle demands"},
			Forbidden:        []string{"nice", "pleasant", "comfortable", "gentle"},
			Register:         "Aristocratic philosophical — Latinate, formal",
			ParagraphRhythm:  "long-longer-longest-philosophical_aside-resume",
		},
		ImageVocabulary: ImageVocabulary{
			Keywords: []string{
				"baroque layering", "chiaroscuro extremes",
				"diagonal tension lines", "dense ornamental surfaces",
				"power geometry", "theatrical staging",
				"overwhelming visual density", "cataloging composition",
			},
			ColorPalette: []string{"crimson", "gold leaf", "deep velvet", "marble white", "candle flame", "shadow black"},
			CompositionalRules: []string{
				"Multiple overlapping visual planes minimum 5 deep",
				"Diagonal dominant lines at 30-60° creating instability",
				"Every surface carries texture or pattern",
				"Lighting from multiple contradictory sources",
			},
		},
	},

	"le_guin": {
		ID:             "le_guin",
		DisplayName:    "Ursula K. Le Guin-esque",
		LanguageOrigin: "English (American)",
		Coordinates: StylePoint{
			SyntacticDensity:    0.50,
			SensoryConcreteness: 0.55,
			OrnamentalRegister:  0.45,
			TensionVisibility:   0.50,
			TensionTemporality:  0.60,
			RealityStability:    0.40,
			Interiority:         0.50,
			TemporalMode:        0.55,
		},
		SignatureMoves: []string{
			"Worldbuilding through implication rather than exposition",
			"Balanced cadence — neither sparse nor baroque",
			"Anthropological precision about invented cultures",
			"Quiet radical premises delivered matter-of-factly",
			"Warm but unsentimental narrative voice",
		},
		TextVocabulary: TextVocabulary{
			Conjunctions:     []string{"and", "though", "because", "as if", "while"},
			SentenceStarters: []string{"The", "In the", "There was a", "She had", "It was not"},
			Forbidden:        []string{"awesome", "literally", "basically", "epic"},
			Register:         "Educated but accessible — precise without ostentation",
			ParagraphRhythm:  "medium-medium-long-short-medium",
		},
		ImageVocabulary: ImageVocabulary{
			Keywords: []string{
				"balanced composition", "warm natural light",
				"inhabited landscape", "architectural worldbuilding",
				"cultural detail in environment", "dignified framing",
				"grounded fantasy", "lived-in spaces",
			},
			ColorPalette: []string{"earth tones", "deep forest green", "stone grey", "warm amber", "twilight blue", "weathered wood"},
			CompositionalRules: []string{
				"Rule of thirds with subject at intersection point",
				"Environmental context always visible — subject in world",
				"Warm color temperature 4500-5500K",
				"Balanced depth of field — subject sharp, context readable",
			},
		},
	},

	"didion": {
		ID:             "didion",
		DisplayName:    "Joan Didion-esque",
		LanguageOrigin: "English (American)",
		Coordinates: StylePoint{
			SyntacticDensity:    0.45,
			SensoryConcreteness: 0.70,
			OrnamentalRegister:  0.15,
			TensionVisibility:   0.30,
			TensionTemporality:  0.40,
			RealityStability:    0.95,
			Interiority:         0.60,
			TemporalMode:        0.40,
		},
		SignatureMoves: []string{
			"Clinical sentence structure masking emotional intensity",
			"Specific sensory detail as existential evidence",
			"Retrospective present tense — reporting from aftermath",
			"Lists of concrete facts that accumulate into mood",
			"The personal made universal through precision",
		},
		TextVocabulary: TextVocabulary{
			Conjunctions:     []string{"and", "but", "which", "although"},
			SentenceStarters: []string{"I", "We", "The", "It was", "In the", "That was the"},
			Forbidden:        []string{"incredible", "unbelievable", "indescribable", "breathtaking"},
			Register:         "Journalistic precision — cool, specific, exact",
			ParagraphRhythm:  "medium-short-long(periodic)-short-fragment",
		},
		ImageVocabulary: ImageVocabulary{
			Keywords: []string{
				"forensic observation", "clinical framing",
				"specific light conditions", "geographical precision",
				"quiet devastation", "California light",
				"motel aesthetic", "highway geometry",
			},
			ColorPalette: []string{"bleached white", "smog amber", "pool blue", "asphalt grey", "jacaranda purple", "desert tan"},
			CompositionalRules: []string{
				"Slightly off-center framing suggesting unease",
				"Harsh midday light — no romantic golden hour",
				"Specific environmental details legible in frame",
				"Flat perspective suggesting journalistic distance",
			},
		},
	},

	"lovecraft": {
		ID:             "lovecraft",
		DisplayName:    "Lovecraft-esque",
		LanguageOrigin: "English (American)",
		Coordinates: StylePoint{
			SyntacticDensity:    0.85,
			SensoryConcreteness: 0.40,
			OrnamentalRegister:  0.85,
			TensionVisibility:   0.80,
			TensionTemporality:  0.85,
			RealityStability:    0.15,
			Interiority:         0.70,
			TemporalMode:        0.75,
		},
		SignatureMoves: []string{
			"Accumulative horror through clause stacking",
			"The unspeakable — gesture toward sensory detail, then retreat",
			"Archaic register lending authority to impossible claims",
			"Geological/cosmic time dwarfing human experience",
			"Narrator's reliability degrading as text progresses",
		},
		TextVocabulary: TextVocabulary{
			Conjunctions:     []string{"and yet", "for", "though", "whilst", "such that", "in consequence of which"},
			SentenceStarters: []string{"It was then that", "I cannot describe", "Of the", "There are things", "What I saw"},
			Forbidden:        []string{"cute", "nice", "fun", "awesome", "cool"},
			Register:         "Archaic academic — deliberately overwrought",
			ParagraphRhythm:  "medium-long-longer-longest-short(gasp)",
		},
		ImageVocabulary: ImageVocabulary{
			Keywords: []string{
				"non-Euclidean geometry", "cyclopean architecture",
				"deep shadow with luminous edges", "tentacular forms",
				"impossible scale", "submarine depth",
				"eldritch luminescence", "geological antiquity",
			},
			ColorPalette: []string{"deep ocean green", "phosphorescent", "basalt black", "sickly yellow-green", "void purple", "corpse grey"},
			CompositionalRules: []string{
				"Subject dwarfed by environment — human scale minimized",
				"Light source origin impossible or contradictory",
				"Perspective lines converging at impossible vanishing point",
				"Geometry that almost resolves but doesn't",
			},
		},
	},

	"borges": {
		ID:             "borges",
		DisplayName:    "Borges-esque",
		LanguageOrigin: "Spanish (Argentine)",
		Coordinates: StylePoint{
			SyntacticDensity:    0.80,
			SensoryConcreteness: 0.15,
			OrnamentalRegister:  0.60,
			TensionVisibility:   0.55,
			TensionTemporality:  0.70,
			RealityStability:    0.10,
			Interiority:         0.80,
			TemporalMode:        0.70,
		},
		SignatureMoves: []string{
			"Labyrinthine logic — the trap closes through reasoning",
			"Infinite libraries, mirrors, recursive structures",
			"Philosophical density compressed into miniature forms",
			"Scholarly apparatus (footnotes, citations) for fictional subjects",
			"Time as simultaneous rather than sequential",
		},
		TextVocabulary: TextVocabulary{
			Conjunctions:     []string{"perhaps", "or rather", "that is to say", "in other words", "which is to say"},
			SentenceStarters: []string{"It is said that", "The curious reader", "According to", "One might conjecture", "The universe"},
			Forbidden:        []string{"simple", "straightforward", "obvious", "clearly"},
			Register:         "Erudite philosophical — precise, recursive, scholarly",
			ParagraphRhythm:  "long-medium-long(recursive)-parenthetical-short(sting)",
		},
		ImageVocabulary: ImageVocabulary{
			Keywords: []string{
				"infinite regression", "mirror recursion",
				"impossible library", "labyrinthine geometry",
				"Escher-like spatial paradox", "miniature containing cosmos",
				"scholarly manuscript", "hexagonal architecture",
			},
			ColorPalette: []string{"parchment", "library mahogany", "ink blue", "mirror silver", "candlelight amber", "mathematical white"},
			CompositionalRules: []string{
				"Recursive visual structures — frame contains smaller version of itself",
				"Impossible spatial logic — Penrose stairs, Klein bottle topology",
				"Text/manuscripts visible as compositional elements",
				"Symmetrical composition suggesting infinite extension",
			},
		},
	},

	"murakami": {
		ID:             "murakami",
		DisplayName:    "Murakami-esque",
		LanguageOrigin: "Japanese",
		Coordinates: StylePoint{
			SyntacticDensity:    0.25,
			SensoryConcreteness: 0.80,
			OrnamentalRegister:  0.20,
			TensionVisibility:   0.20,
			TensionTemporality:  0.20,
			RealityStability:    0.20,
			Interiority:         0.55,
			TemporalMode:        0.25,
		},
		SignatureMoves: []string{
			"Flat affect juxtaposed with surreal intrusion",
			"Mundane sensory detail anchoring the uncanny",
			"Pop culture references as emotional shorthand",
			"Loneliness rendered through domestic routine",
			"Cats, jazz, cooking as consciousness markers",
		},
		TextVocabulary: TextVocabulary{
			Conjunctions:     []string{"and", "but", "so", "then"},
			SentenceStarters: []string{"I", "She", "The", "It was a", "For some reason"},
			Forbidden:        []string{"magnificent", "extraordinary", "awe-inspiring", "spectacular"},
			Register:         "Conversational flat — deliberately understated",
			ParagraphRhythm:  "medium-short-short-medium-short(offhand_surreal)",
		},
		ImageVocabulary: ImageVocabulary{
			Keywords: []string{
				"liminal space", "quiet domestic interior",
				"single impossible element", "empty urban night",
				"jazz club lighting", "cat on kitchen counter",
				"mundane surrealism", "rain on window",
			},
			ColorPalette: []string{"warm interior amber", "cold blue exterior", "vinyl black", "kitchen white", "neon reflection", "twilight grey"},
			CompositionalRules: []string{
				"Domestic interior framing — through doorways, across tables",
				"One element that doesn't belong in an otherwise normal scene",
				"Warm artificial light contrasting cold exterior visible through window",
				"Subject alone in frame — isolation geometry",
			},
		},
	},

	"marquez": {
		ID:             "marquez",
		DisplayName:    "Márquez-esque",
		LanguageOrigin: "Spanish (Colombian)",
		Coordinates: StylePoint{
			SyntacticDensity:    0.75,
			SensoryConcreteness: 0.75,
			OrnamentalRegister:  0.80,
			TensionVisibility:   0.70,
			TensionTemporality:  0.95,
			RealityStability:    0.30,
			Interiority:         0.40,
			TemporalMode:        0.85,
		},
		SignatureMoves: []string{
			"Magical realism — impossible content in matter-of-fact declarative",
			"Multigenerational time — fate announced, then approached patiently",
			"Tropical profusion of sensory detail",
			"Names and lineages as structural architecture",
			"Death foretold — opening sentence contains the ending",
		},
		TextVocabulary: TextVocabulary{
			Conjunctions:     []string{"and", "who", "which", "where", "until", "as though"},
			SentenceStarters: []string{"Many years later", "It was", "The day", "Colonel", "No one"},
			Forbidden:        []string{"basically", "literally", "actually", "arguably"},
			Register:         "Declarative lush — matter-of-fact about the impossible",
			ParagraphRhythm:  "long-long-very_long-short(fate)-long",
		},
		ImageVocabulary: ImageVocabulary{
			Keywords: []string{
				"tropical botanical density", "butterflies as portent",
				"golden afternoon light", "crumbling colonial architecture",
				"magical realism composite", "generational portrait",
				"rain of flowers", "solitude geometry",
			},
			ColorPalette: []string{"tropical green", "marigold yellow", "terracotta", "butterfly blue", "aged sepia", "blood orange"},
			CompositionalRules: []string{
				"Dense botanical framing — foliage filling edges",
				"Multiple generations suggested in single frame",
				"One physically impossible element rendered photorealistically",
				"Warm saturated color temperature 3500-4500K",
			},
		},
	},

	"kafka": {
		ID:             "kafka",
		DisplayName:    "Kafka-esque",
		LanguageOrigin: "German (Czech)",
		Coordinates: StylePoint{
			SyntacticDensity:    0.65,
			SensoryConcreteness: 0.35,
			OrnamentalRegister:  0.10,
			TensionVisibility:   0.35,
			TensionTemporality:  0.30,
			RealityStability:    0.25,
			Interiority:         0.35,
			TemporalMode:        0.30,
		},
		SignatureMoves: []string{
			"Impossible premise accepted, bureaucratic logic thereafter",
			"Plain surface describing impossible situations",
			"Arrested time — events happen but nothing progresses",
			"Authority that can never be reached or understood",
			"The body as site of inexplicable transformation",
		},
		TextVocabulary: TextVocabulary{
			Conjunctions:     []string{"however", "nevertheless", "in spite of", "which", "although"},
			SentenceStarters: []string{"He", "It was", "The", "Someone", "There was no"},
			Forbidden:        []string{"magical", "wonderful", "extraordinary", "miraculous"},
			Register:         "Bureaucratic plain — institutional clarity about the absurd",
			ParagraphRhythm:  "medium-medium-medium-medium(relentless_same)-medium",
		},
		ImageVocabulary: ImageVocabulary{
			Keywords: []string{
				"institutional corridor", "impossible bureaucracy",
				"clean lines with subtle wrongness", "door that leads nowhere",
				"fluorescent institutional light", "scale distortion",
				"empty waiting room", "metamorphic body",
			},
			ColorPalette: []string{"institutional beige", "corridor green", "fluorescent white", "document manila", "ink stamp blue", "grey suit"},
			CompositionalRules: []string{
				"Symmetrical institutional framing with one element disrupted",
				"Vanishing-point corridors implying infinite recession",
				"Flat even lighting — no drama, no escape into shadow",
				"Human figure scaled slightly wrong relative to architecture",
			},
		},
	},

	"shonagon": {
		ID:             "shonagon",
		DisplayName:    "Sei Shōnagon-esque",
		LanguageOrigin: "Japanese (Classical)",
		Coordinates: StylePoint{
			SyntacticDensity:    0.15,
			SensoryConcreteness: 0.95,
			OrnamentalRegister:  0.40,
			TensionVisibility:   0.25,
			TensionTemporality:  0.15,
			RealityStability:    0.85,
			Interiority:         0.65,
			TemporalMode:        0.10,
		},
		SignatureMoves: []string{
			"List-based observation as primary literary form",
			"Aesthetic judgment as the content — 'things that are...'",
			"Radical sensory specificity about transient moments",
			"Categorical thinking — grouping experiences by quality",
			"Brevity with maximum sensory payload per word",
		},
		TextVocabulary: TextVocabulary{
			Conjunctions:     []string{"and", "—", ";"},
			SentenceStarters: []string{"Things that", "In spring", "It is", "A", "The", "One"},
			Forbidden:        []string{"basically", "essentially", "in conclusion", "furthermore", "moreover"},
			Register:         "Elegant brevity — each word carries maximum sensory weight",
			ParagraphRhythm:  "fragment-fragment-short-fragment-observation",
		},
		ImageVocabulary: ImageVocabulary{
			Keywords: []string{
				"seasonal specificity", "single perfect object",
				"morning light on silk", "rain on veranda",
				"ink brush precision", "negative space as reverence",
				"insect on flower", "paper screen diffused light",
			},
			ColorPalette: []string{"cherry blossom pink", "ink black", "rice paper white", "moss green", "persimmon orange", "dawn grey"},
			CompositionalRules: []string{
				"Single subject dominating frame — no competing elements",
				"Extreme negative space ratio minimum 1:5 subject to ground",
				"Natural light only — seasonal quality explicit",
				"Shallow depth isolating one perfect detail",
			},
		},
	},

	"lispector": {
		ID:             "lispector",
		DisplayName:    "Clarice Lispector-esque",
		LanguageOrigin: "Brazilian Portuguese",
		Coordinates: StylePoint{
			SyntacticDensity:    0.55,
			SensoryConcreteness: 0.60,
			OrnamentalRegister:  0.55,
			TensionVisibility:   0.65,
			TensionTemporality:  0.50,
			RealityStability:    0.50,
			Interiority:         0.95,
			TemporalMode:        0.45,
		},
		SignatureMoves: []string{
			"Language turning to examine itself mid-sentence",
			"Interior stream — consciousness as the event",
			"The body as epistemological instrument",
			"Recursive self-interruption and self-correction",
			"Philosophical viscerality — abstract ideas with physical weight",
		},
		TextVocabulary: TextVocabulary{
			Conjunctions:     []string{"but", "and yet", "or rather", "—", "that is", "no"},
			SentenceStarters: []string{"She", "It was", "What she", "The", "But", "No—"},
			Forbidden:        []string{"simply", "obviously", "naturally", "of course"},
			Register:         "Philosophical intimate — thought caught in the act of thinking",
			ParagraphRhythm:  "medium-long(spiraling)-short(correction)-medium-fragment",
		},
		ImageVocabulary: ImageVocabulary{
			Keywords: []string{
				"extreme close-up", "organic texture as landscape",
				"introspective gaze vector", "skin as terrain",
				"interior light", "mirror self-regard",
				"domestic object elevated to icon", "visceral abstraction",
			},
			ColorPalette: []string{"skin tones", "interior shadow", "egg white", "blood warmth", "kitchen tile", "afternoon gold"},
			CompositionalRules: []string{
				"Extreme close framing — face fills frame edge to edge",
				"Shallow depth of field f/1.4-f/2.0 equivalent",
				"Gaze vector direct to viewer or at own reflection",
				"Organic textures rendered at macro scale",
			},
		},
	},
}
