package verbclass

import "github.com/ppiankov/semflow/internal/model"

// builtinClasses is the bundled verb-class inventory. It covers the
// high-frequency class families; site-specific classes load from the
// data directory on top of it.
func builtinClasses() []VerbClass {
	animate := []SelectionalRestriction{{Type: "animate", Value: "+"}}
	concrete := []SelectionalRestriction{{Type: "concrete", Value: "+"}}

	return []VerbClass{
		{
			ID:      "give-13.1",
			Name:    "give",
			Members: []string{"give", "hand", "lend", "loan", "pass", "deal"},
			Roles: []RoleSpec{
				{Role: model.RoleAgent, Restrictions: animate},
				{Role: model.RoleTheme},
				{Role: model.RoleRecipient, Restrictions: animate},
			},
			Frames: []SyntacticFrame{
				{
					Description: "NP V NP PP.recipient",
					Primary:     "Basic Ditransitive",
					Example:     "They lent a bicycle to me.",
					Semantics: []SemanticPredicate{
						{Name: "transfer", Type: PredTransfer, Args: []string{"Agent", "Theme", "Recipient"}},
						{Name: "has_possession", Type: PredPossession, Args: []string{"Recipient", "Theme"}},
					},
				},
			},
		},
		{
			ID:      "send-11.1",
			Name:    "send",
			Members: []string{"send", "ship", "mail", "forward"},
			Roles: []RoleSpec{
				{Role: model.RoleAgent, Restrictions: animate},
				{Role: model.RoleTheme},
				{Role: model.RoleGoal},
			},
			Frames: []SyntacticFrame{
				{
					Description: "NP V NP PP.goal",
					Example:     "Nora sent the book to London.",
					Semantics: []SemanticPredicate{
						{Name: "transfer", Type: PredTransfer, Args: []string{"Agent", "Theme", "Goal"}},
						{Name: "motion", Type: PredMotion, Args: []string{"Theme"}},
					},
				},
			},
		},
		{
			ID:      "break-45.1",
			Name:    "break",
			Members: []string{"break", "shatter", "crack", "snap", "split", "tear"},
			Roles: []RoleSpec{
				{Role: model.RoleAgent},
				{Role: model.RolePatient, Restrictions: concrete},
				{Role: model.RoleInstrument},
			},
			Frames: []SyntacticFrame{
				{
					Description: "NP V NP",
					Primary:     "Causative",
					Example:     "Tony broke the window.",
					Semantics: []SemanticPredicate{
						{Name: "cause", Type: PredChange, Args: []string{"Agent", "E"}},
						{Name: "degradation_material_integrity", Type: PredDestroyed, Args: []string{"Patient"}},
					},
				},
			},
		},
		{
			ID:      "destroy-44",
			Name:    "destroy",
			Members: []string{"destroy", "demolish", "ruin", "wreck"},
			Roles: []RoleSpec{
				{Role: model.RoleAgent},
				{Role: model.RolePatient, Restrictions: concrete},
			},
			Frames: []SyntacticFrame{
				{
					Description: "NP V NP",
					Example:     "The army destroyed the bridge.",
					Semantics: []SemanticPredicate{
						{Name: "destroyed", Type: PredDestroyed, Args: []string{"Patient"}},
						{Name: "cause", Type: PredChange, Args: []string{"Agent", "E"}},
					},
				},
			},
		},
		{
			ID:      "build-26.1",
			Name:    "build",
			Members: []string{"build", "construct", "assemble", "erect", "make"},
			Roles: []RoleSpec{
				{Role: model.RoleAgent, Restrictions: animate},
				{Role: model.RoleTheme},
				{Role: model.RoleSource},
			},
			Frames: []SyntacticFrame{
				{
					Description: "NP V NP",
					Primary:     "Creation",
					Example:     "Martha built a house.",
					Semantics: []SemanticPredicate{
						{Name: "created", Type: PredCreated, Args: []string{"Theme"}},
						{Name: "cause", Type: PredChange, Args: []string{"Agent", "E"}},
					},
				},
			},
		},
		{
			ID:      "run-51.3.2",
			Name:    "run",
			Members: []string{"run", "walk", "jog", "sprint", "swim", "stroll"},
			Roles: []RoleSpec{
				{Role: model.RoleAgent, Restrictions: animate},
				{Role: model.RoleGoal},
			},
			Frames: []SyntacticFrame{
				{
					Description: "NP V",
					Primary:     "Intransitive Motion",
					Example:     "John ran.",
					Semantics: []SemanticPredicate{
						{Name: "motion", Type: PredMotion, Args: []string{"Agent"}},
					},
				},
			},
		},
		{
			ID:      "arrive-48.1.1",
			Name:    "arrive",
			Members: []string{"arrive", "come", "depart", "return"},
			Roles: []RoleSpec{
				{Role: model.RoleTheme},
				{Role: model.RoleGoal},
			},
			Frames: []SyntacticFrame{
				{
					Description: "NP V PP.goal",
					Example:     "The train arrived at the station.",
					Semantics: []SemanticPredicate{
						{Name: "motion", Type: PredMotion, Args: []string{"Theme"}},
						{Name: "path_rel", Type: PredMotion, Args: []string{"Theme", "Goal"}},
					},
				},
			},
		},
		{
			ID:      "admire-31.2",
			Name:    "admire",
			Members: []string{"admire", "love", "hate", "fear", "enjoy", "miss"},
			Roles: []RoleSpec{
				{Role: model.RoleExperiencer, Restrictions: animate},
				{Role: model.RoleStimulus},
			},
			Frames: []SyntacticFrame{
				{
					Description: "NP V NP",
					Primary:     "Experiencer Subject",
					Example:     "The tourists admired the paintings.",
					Semantics: []SemanticPredicate{
						{Name: "emotional_state", Type: PredExperience, Args: []string{"Experiencer", "Stimulus"}},
					},
				},
			},
		},
		{
			ID:      "say-37.7",
			Name:    "say",
			Members: []string{"say", "state", "declare", "announce", "mention"},
			Roles: []RoleSpec{
				{Role: model.RoleAgent, Restrictions: animate},
				{Role: model.RoleRecipient, Restrictions: animate},
				{Role: model.RoleTheme},
			},
			Frames: []SyntacticFrame{
				{
					Description: "NP V S",
					Example:     "She said that it was over.",
					Semantics: []SemanticPredicate{
						{Name: "transfer_info", Type: PredCommunication, Args: []string{"Agent", "Recipient", "Theme"}},
					},
				},
			},
		},
		{
			ID:      "tell-37.2",
			Name:    "tell",
			Members: []string{"tell", "ask", "inform", "remind"},
			Roles: []RoleSpec{
				{Role: model.RoleAgent, Restrictions: animate},
				{Role: model.RoleRecipient, Restrictions: animate},
				{Role: model.RoleTheme},
			},
			Frames: []SyntacticFrame{
				{
					Description: "NP V NP NP",
					Example:     "Ellen told Helen the story.",
					Semantics: []SemanticPredicate{
						{Name: "transfer_info", Type: PredCommunication, Args: []string{"Agent", "Recipient", "Theme"}},
					},
				},
			},
		},
		{
			ID:      "own-100.1",
			Name:    "own",
			Members: []string{"own", "possess", "have", "lack"},
			Roles: []RoleSpec{
				{Role: model.RoleAgent},
				{Role: model.RoleTheme},
			},
			Frames: []SyntacticFrame{
				{
					Description: "NP V NP",
					Example:     "They own three houses.",
					Semantics: []SemanticPredicate{
						{Name: "has_possession", Type: PredPossession, Args: []string{"Agent", "Theme"}},
					},
				},
			},
		},
		{
			ID:      "exist-47.1",
			Name:    "exist",
			Members: []string{"exist", "remain", "persist", "survive"},
			Roles: []RoleSpec{
				{Role: model.RoleTheme},
				{Role: model.RoleLocation},
			},
			Frames: []SyntacticFrame{
				{
					Description: "NP V PP.location",
					Example:     "Dinosaurs existed long ago.",
					Semantics: []SemanticPredicate{
						{Name: "exist", Type: PredExistence, Args: []string{"Theme", "Location"}},
					},
				},
			},
		},
		{
			ID:      "eat-39.1",
			Name:    "eat",
			Members: []string{"eat", "drink"},
			Roles: []RoleSpec{
				{Role: model.RoleAgent, Restrictions: animate},
				{Role: model.RolePatient},
			},
			Frames: []SyntacticFrame{
				{
					Description: "NP V NP",
					Example:     "Cynthia ate the peach.",
					Semantics: []SemanticPredicate{
						{Name: "take_in", Type: PredChange, Args: []string{"Agent", "Patient"}},
					},
				},
			},
		},
		{
			ID:      "hit-18.1",
			Name:    "hit",
			Members: []string{"hit", "kick", "strike", "knock", "tap"},
			Roles: []RoleSpec{
				{Role: model.RoleAgent},
				{Role: model.RolePatient, Restrictions: concrete},
				{Role: model.RoleInstrument},
			},
			Frames: []SyntacticFrame{
				{
					Description: "NP V NP",
					Example:     "Paula hit the ball.",
					Semantics: []SemanticPredicate{
						{Name: "manner", Type: PredContact, Args: []string{"Agent", "Patient"}},
						{Name: "contact", Type: PredContact, Args: []string{"Agent", "Patient"}},
					},
				},
			},
		},
	}
}
