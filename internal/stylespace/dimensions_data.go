package stylespace

// dimensionTable is the full dimension registry. The tier vocabularies are
// hand-curated and load-bearing: the prompt generators concatenate these
// directive sentences verbatim.
var dimensionTable = map[Dimension]DimensionSpec{
	SyntacticDensity: {
		ID:          SyntacticDensity,
		Name:        "Syntactic Density",
		Description: "Structural load per sentence — clause nesting depth, ratio of subordinate to main clauses.",
		LowLabel:    "paratactic / flat",
		HighLabel:   "hypotactic / deeply nested",
		Text: TierSet{
			Low: TierBundle{
				Traits: []Trait{
					textTrait("sentence_length", "short"),
					numTrait("clause_depth", 1),
					listTrait("conjunction_preference", "and", "then", "but"),
				},
				Directive: "Simple declarative sentences. One main clause. Coordinating conjunctions only.",
			},
			Mid: TierBundle{
				Traits: []Trait{
					textTrait("sentence_length", "variable"),
					numTrait("clause_depth", 2),
					listTrait("conjunction_preference", "which", "although", "because", "while"),
				},
				Directive: "Balanced sentence architecture. Mix simple and complex structures. Periodic sentences permitted.",
			},
			High: TierBundle{
				Traits: []Trait{
					textTrait("sentence_length", "long"),
					numTrait("clause_depth", 4),
					listTrait("conjunction_preference", "wherein", "notwithstanding", "such that", "inasmuch as"),
				},
				Directive: "Deeply nested subordination. Sentences carry multiple embedded qualifications. Delay main verb. Exhaustive clause stacking.",
			},
		},
		Image: TierSet{
			Low: TierBundle{
				Traits: []Trait{
					numTrait("compositional_layers", 1),
					textTrait("depth_planes", "flat"),
				},
				Directive: "Minimal layering. Single visual plane. Clean negative space. Figure isolated against ground.",
			},
			Mid: TierBundle{
				Traits: []Trait{
					numTrait("compositional_layers", 3),
					textTrait("depth_planes", "moderate"),
				},
				Directive: "Three distinct depth planes. Foreground, subject, background clearly articulated.",
			},
			High: TierBundle{
				Traits: []Trait{
					numTrait("compositional_layers", 5),
					textTrait("depth_planes", "deep"),
				},
				Directive: "Dense visual layering. Multiple overlapping planes. Nested frames-within-frames. Baroque spatial depth.",
			},
		},
	},

	SensoryConcreteness: {
		ID:          SensoryConcreteness,
		Name:        "Sensory Concreteness",
		Description: "Ratio of concrete sensory nouns/verbs to abstract conceptual language.",
		LowLabel:    "abstract / conceptual",
		HighLabel:   "concrete / sensory",
		Text: TierSet{
			Low: TierBundle{
				Traits: []Trait{
					textTrait("noun_register", "abstract"),
					textTrait("verb_type", "conceptual"),
				},
				Directive: "Latinate abstract vocabulary. Ideas, categories, logical relations. Nouns you cannot photograph.",
			},
			Mid: TierBundle{
				Traits: []Trait{
					textTrait("noun_register", "mixed"),
					textTrait("verb_type", "balanced"),
				},
				Directive: "Ground abstractions in occasional concrete detail. Alternate between sensory and conceptual.",
			},
			High: TierBundle{
				Traits: []Trait{
					textTrait("noun_register", "concrete"),
					textTrait("verb_type", "physical"),
				},
				Directive: "Anglo-Saxon concrete vocabulary. Things with weight, temperature, texture. Actions visible to a camera. Nouns you can hold.",
			},
		},
		Image: TierSet{
			Low: TierBundle{
				Traits: []Trait{
					textTrait("material_rendering", "diagrammatic"),
					textTrait("texture_specificity", "minimal"),
				},
				Directive: "Geometric abstraction. Flat color fields. Schematic rather than photographic. Conceptual space.",
			},
			Mid: TierBundle{
				Traits: []Trait{
					textTrait("material_rendering", "suggested"),
					textTrait("texture_specificity", "moderate"),
				},
				Directive: "Recognizable materials with selective detail. Key textures rendered, others implied.",
			},
			High: TierBundle{
				Traits: []Trait{
					textTrait("material_rendering", "photographic"),
					textTrait("texture_specificity", "explicit"),
				},
				Directive: "Explicit material rendering. Visible grain, weave, condensation, patina. Surfaces you can feel.",
			},
		},
	},

	OrnamentalRegister: {
		ID:          OrnamentalRegister,
		Name:        "Ornamental Register",
		Description: "Decoration density — adjective frequency, figurative language, lexical rarity. The prose surface treatment.",
		LowLabel:    "stripped / anti-ornamental",
		HighLabel:   "lush / baroque",
		Text: TierSet{
			Low: TierBundle{
				Traits: []Trait{
					textTrait("adjective_density", "minimal"),
					textTrait("figurative_frequency", "rare"),
					textTrait("vocabulary_register", "common"),
				},
				Directive: "No unnecessary adjectives. Plain nouns. Metaphor only when unavoidable. Common Anglo-Saxon vocabulary.",
			},
			Mid: TierBundle{
				Traits: []Trait{
					textTrait("adjective_density", "selective"),
					textTrait("figurative_frequency", "occasional"),
					textTrait("vocabulary_register", "educated"),
				},
				Directive: "Selective ornamentation. Well-placed figurative language. Elegant but not excessive.",
			},
			High: TierBundle{
				Traits: []Trait{
					textTrait("adjective_density", "abundant"),
					textTrait("figurative_frequency", "dense"),
					textTrait("vocabulary_register", "rare/archaic"),
				},
				Directive: "Lush adjectival profusion. Dense figurative language. Rare and archaic vocabulary. Cataloging through ornamental excess.",
			},
		},
		Image: TierSet{
			Low: TierBundle{
				Traits: []Trait{
					textTrait("surface_complexity", "clean"),
					textTrait("detail_density", "minimal"),
				},
				Directive: "Clean surfaces. Minimal texture. Modernist reduction. Negative space as design element.",
			},
			Mid: TierBundle{
				Traits: []Trait{
					textTrait("surface_complexity", "detailed"),
					textTrait("detail_density", "moderate"),
				},
				Directive: "Selective surface detail. Key areas rendered with precision, others simplified.",
			},
			High: TierBundle{
				Traits: []Trait{
					textTrait("surface_complexity", "ornate"),
					textTrait("detail_density", "maximal"),
				},
				Directive: "Highly detailed ornamental surfaces. Pattern-on-pattern. Filigree, brocade, botanical density. Horror vacui — every surface activated.",
			},
		},
	},

	TensionVisibility: {
		ID:          TensionVisibility,
		Name:        "Tension Visibility",
		Description: "Whether tension lives on the surface or remains submerged.",
		LowLabel:    "submerged / iceberg",
		HighLabel:   "externalized / explicit",
		Text: TierSet{
			Low: TierBundle{
				Traits: []Trait{
					textTrait("show_tell_ratio", "show"),
					textTrait("emotional_vocabulary", "absent"),
				},
				Directive: "Never name the emotion. Render behavior and objects. Reader infers tension from what is not said.",
			},
			Mid: TierBundle{
				Traits: []Trait{
					textTrait("show_tell_ratio", "balanced"),
					textTrait("emotional_vocabulary", "restrained"),
				},
				Directive: "Acknowledge tension through measured observation. Clinical precision about emotional states.",
			},
			High: TierBundle{
				Traits: []Trait{
					textTrait("show_tell_ratio", "tell"),
					textTrait("emotional_vocabulary", "explicit"),
				},
				Directive: "Name the tension directly. Escalating emotional vocabulary. Narrator's distress is the content.",
			},
		},
		Image: TierSet{
			Low: TierBundle{
				Traits: []Trait{
					textTrait("lighting_drama", "even"),
					textTrait("contrast_ratio", "low"),
				},
				Directive: "Even, ambient lighting. Tension encoded in compositional unease — off-center framing, ambiguous gaze vectors, objects slightly wrong.",
			},
			Mid: TierBundle{
				Traits: []Trait{
					textTrait("lighting_drama", "directional"),
					textTrait("contrast_ratio", "moderate"),
				},
				Directive: "Directional lighting creating defined shadows. Moderate tonal contrast. Tension visible but controlled.",
			},
			High: TierBundle{
				Traits: []Trait{
					textTrait("lighting_drama", "chiaroscuro"),
					textTrait("contrast_ratio", "extreme"),
				},
				Directive: "Dramatic chiaroscuro. Deep shadows, hard light. Diagonal composition lines. Explicit visual conflict and confrontation.",
			},
		},
	},

	TensionTemporality: {
		ID:          TensionTemporality,
		Name:        "Tension Temporality",
		Description: "Whether tension accumulates slowly over time or arrives as rupture.",
		LowLabel:    "ruptural / episodic",
		HighLabel:   "accumulative / inevitable",
		Text: TierSet{
			Low: TierBundle{
				Traits: []Trait{
					textTrait("pacing", "episodic"),
					textTrait("foreshadowing", "none"),
				},
				Directive: "Self-contained moments. Each passage complete in itself. Tension arrives without warning.",
			},
			Mid: TierBundle{
				Traits: []Trait{
					textTrait("pacing", "building"),
					textTrait("foreshadowing", "subtle"),
				},
				Directive: "Gradual escalation through observation. Evidence accumulates. Paragraphs lengthen.",
			},
			High: TierBundle{
				Traits: []Trait{
					textTrait("pacing", "inevitable"),
					textTrait("foreshadowing", "heavy"),
				},
				Directive: "Fate announced early, then approached with terrible patience. Each sentence worse than the last. Progressive revelation of the already-known.",
			},
		},
		Image: TierSet{
			Low: TierBundle{
				Traits: []Trait{
					textTrait("temporal_framing", "frozen_instant"),
					textTrait("sequence_implication", "none"),
				},
				Directive: "Frozen moment. No implied before or after. Complete in the frame. Snapshot temporality.",
			},
			Mid: TierBundle{
				Traits: []Trait{
					textTrait("temporal_framing", "implied_sequence"),
					textTrait("sequence_implication", "moderate"),
				},
				Directive: "Implied motion. Traces of what came before — footprints, smoke, residue. Subject mid-action.",
			},
			High: TierBundle{
				Traits: []Trait{
					textTrait("temporal_framing", "durational"),
					textTrait("sequence_implication", "heavy"),
				},
				Directive: "Temporal compositing. Multiple moments layered in single frame. Long exposure blur. Generational accumulation visible in environmental detail.",
			},
		},
	},

	RealityStability: {
		ID:          RealityStability,
		Name:        "Reality Stability",
		Description: "How trustworthy is the depicted world — how much impossibility the text's internal logic permits.",
		LowLabel:    "unstable / paradoxical",
		HighLabel:   "stable / verifiable",
		Text: TierSet{
			Low: TierBundle{
				Traits: []Trait{
					textTrait("epistemic_mode", "unreliable"),
					textTrait("modality", "impossible"),
				},
				Directive: "State impossible things as fact. No hedging. Paradox presented in declarative mode. Logic that folds back on itself.",
			},
			Mid: TierBundle{
				Traits: []Trait{
					textTrait("epistemic_mode", "liminal"),
					textTrait("modality", "conditional"),
				},
				Directive: "Reality bends under observation. Familiar things behave strangely. One impossible element in an otherwise stable frame.",
			},
			High: TierBundle{
				Traits: []Trait{
					textTrait("epistemic_mode", "reliable"),
					textTrait("modality", "declarative"),
				},
				Directive: "Journalistic reliability. Verifiable details. Physical accuracy. Hedging language for uncertainty.",
			},
		},
		Image: TierSet{
			Low: TierBundle{
				Traits: []Trait{
					textTrait("spatial_logic", "impossible"),
					textTrait("physics_accuracy", "violated"),
				},
				Directive: "Impossible geometry. Escher-like spatial paradox. Recursive visual structures. Dream logic composition. Perspective that contradicts itself.",
			},
			Mid: TierBundle{
				Traits: []Trait{
					textTrait("spatial_logic", "liminal"),
					textTrait("physics_accuracy", "mostly_correct"),
				},
				Directive: "Physically plausible with one wrong element. Uncanny valley of space. Light from impossible source. Scale inconsistency.",
			},
			High: TierBundle{
				Traits: []Trait{
					textTrait("spatial_logic", "correct"),
					textTrait("physics_accuracy", "accurate"),
				},
				Directive: "Physically accurate rendering. Correct perspective, lighting, material behavior. Photographic spatial logic.",
			},
		},
	},

	Interiority: {
		ID:          Interiority,
		Name:        "Interiority",
		Description: "Degree of access to inner experience — psychological depth and subjective consciousness rendered in the text.",
		LowLabel:    "exterior / behavioral",
		HighLabel:   "interior / consciousness",
		Text: TierSet{
			Low: TierBundle{
				Traits: []Trait{
					textTrait("pov_mode", "external"),
					textTrait("thought_access", "none"),
				},
				Directive: "Camera-eye. Behavior only. No access to thought. Dialogue and action. Reader infers psychology from surface.",
			},
			Mid: TierBundle{
				Traits: []Trait{
					textTrait("pov_mode", "limited"),
					textTrait("thought_access", "filtered"),
				},
				Directive: "Selective interiority. Observations filtered through a distinctive consciousness but not direct stream of thought.",
			},
			High: TierBundle{
				Traits: []Trait{
					textTrait("pov_mode", "deep"),
					textTrait("thought_access", "immersive"),
				},
				Directive: "Language as thought happening. Consciousness rendered in real-time. The sentence IS the inner experience.",
			},
		},
		Image: TierSet{
			Low: TierBundle{
				Traits: []Trait{
					textTrait("framing_distance", "wide"),
					textTrait("dof", "deep"),
				},
				Directive: "Wide environmental framing. Figure-in-landscape. Deep depth of field. Subject as element of composition, not psychological center.",
			},
			Mid: TierBundle{
				Traits: []Trait{
					textTrait("framing_distance", "medium"),
					textTrait("dof", "moderate"),
				},
				Directive: "Medium shot. Subject's face visible. Environmental context retained. Gaze vector at 15-30° from camera axis.",
			},
			High: TierBundle{
				Traits: []Trait{
					textTrait("framing_distance", "close"),
					textTrait("dof", "shallow"),
				},
				Directive: "Tight framing. Eyes prominent. Shallow depth of field isolating subject. Direct or near-direct gaze vector to viewer. Background dissolved into bokeh.",
			},
		},
	},

	TemporalMode: {
		ID:          TemporalMode,
		Name:        "Temporal Mode",
		Description: "The text's relationship to time — from episodic eternal present to cyclical/exhaustive temporal structures.",
		LowLabel:    "eternal present / episodic",
		HighLabel:   "cyclical / exhaustive",
		Text: TierSet{
			Low: TierBundle{
				Traits: []Trait{
					textTrait("tense", "present"),
					textTrait("temporal_scope", "moment"),
				},
				Directive: "Each passage exists in its own present. No before or after implied. Self-contained observation. Time as a series of discrete nows.",
			},
			Mid: TierBundle{
				Traits: []Trait{
					textTrait("tense", "variable"),
					textTrait("temporal_scope", "span"),
				},
				Directive: "Awareness of duration. Past informing present. Flashback and prolepsis available but controlled. Deep time acknowledged.",
			},
			High: TierBundle{
				Traits: []Trait{
					textTrait("tense", "omniscient_temporal"),
					textTrait("temporal_scope", "generations"),
				},
				Directive: "All moments present simultaneously. Cyclical return. Generations rhyming. Every permutation explored. Time as exhaustive catalog.",
			},
		},
		Image: TierSet{
			Low: TierBundle{
				Traits: []Trait{
					textTrait("motion_state", "frozen"),
					textTrait("temporal_texture", "instantaneous"),
				},
				Directive: "Crisp frozen instant. No motion blur. No implied sequence. Photograph temporality.",
			},
			Mid: TierBundle{
				Traits: []Trait{
					textTrait("motion_state", "implied"),
					textTrait("temporal_texture", "durational"),
				},
				Directive: "Implied duration. Weathering, aging, patina suggesting passage of time. Environmental storytelling through wear.",
			},
			High: TierBundle{
				Traits: []Trait{
					textTrait("motion_state", "composite"),
					textTrait("temporal_texture", "layered"),
				},
				Directive: "Multiple temporal layers in single frame. Ghosting, palimpsest, archaeological stratification. Long exposure. Decay and growth co-present.",
			},
		},
	},
}
