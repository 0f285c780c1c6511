// Package roster holds the hard-coded list of enemy wizards a player can
// challenge. Entries are returned by value so callers cannot mutate the
// shared roster.
package roster

import (
	"strings"

	"github.com/lukeharte/wizard-arena/internal/game"
)

// Enemy is a ready-to-fight wizard plus the flavor preview shown on the
// roster screen before a match starts.
type Enemy struct {
	game.Wizard
	Preview string `json:"preview"`
}

// Enemies returns a copy of the built-in enemy roster in display order.
func Enemies() []Enemy {
	out := make([]Enemy, len(enemies))
	copy(out, enemies)
	for i := range out {
		out[i].Spells = append([]game.Spell(nil), enemies[i].Spells...)
	}
	return out
}

// FindByName looks up an enemy by case-insensitive name match.
func FindByName(name string) (Enemy, bool) {
	want := strings.ToLower(strings.TrimSpace(name))
	for i := range enemies {
		if strings.ToLower(enemies[i].Name) == want {
			e := enemies[i]
			e.Spells = append([]game.Spell(nil), enemies[i].Spells...)
			return e, true
		}
	}
	return Enemy{}, false
}

var enemies = []Enemy{
	{
		Wizard: game.Wizard{
			Name:             "Apex Drift Igniter",
			PrimaryElement:   game.Fire,
			SecondaryElement: game.Storm,
			Attack:           0.87,
			Defense:          0.28,
			Health:           0.46,
			Healing:          0.18,
			Arcane:           0.64,
			CombatStyle:      "Glass-cannon sprinter who spikes early damage with risky, high-tempo bursts.",
			Spells: []game.Spell{
				{Name: "Redline Shatter", Type: game.SpellDamage, Description: "A screaming arc of heat snaps like a whip across the field.", Element: game.Fire, Strength: 0.86},
				{Name: "Turbo Spark Trail", Type: game.SpellDamage, Description: "A zigzag of sparks lashes the ground and erupts beneath the foe.", Element: game.Storm, Strength: 0.72},
				{Name: "Afterburn Veil", Type: game.SpellBuff, Description: "A hot updraft wraps the caster, boosting acceleration and bite.", Element: game.Fire, Strength: 0.58},
				{Name: "Slipstream Stall", Type: game.SpellDebuff, Description: "A turbulent gust steals the enemy's momentum mid-charge.", Element: game.Storm, Strength: 0.63},
			},
		},
		Preview: "Heat ripples off a restless frame; movements twitch toward sudden openings while the stance leaves a few edges unguarded.",
	},
	{
		Wizard: game.Wizard{
			Name:             "Kiln-Bound Bulwark",
			PrimaryElement:   game.Fire,
			SecondaryElement: game.Balance,
			Attack:           0.62,
			Defense:          0.76,
			Health:           0.78,
			Healing:          0.32,
			Arcane:           0.48,
			CombatStyle:      "Defensive bruiser who trades space for sustained, measured counters.",
			Spells: []game.Spell{
				{Name: "Ceramic Carapace", Type: game.SpellBuff, Description: "A kiln's glow hardens into plates that temper incoming blows.", Element: game.Fire, Strength: 0.72},
				{Name: "Coalbed Hammer", Type: game.SpellDamage, Description: "Smoldering coals fuse into a heavy mace that slams down once.", Element: game.Fire, Strength: 0.66},
				{Name: "Equalize Emberline", Type: game.SpellDebuff, Description: "A thin ember-line redraws the field, sapping overextensions.", Element: game.Balance, Strength: 0.60},
				{Name: "Hearth's Last Push", Type: game.SpellDamage, Description: "A deep furnace cough hurls cinders in a compact blast.", Element: game.Fire, Strength: 0.55},
			},
		},
		Preview: "A banked glow seeps from layered plating; their pace is unhurried, weight settling like a shield that rarely breaks rhythm.",
	},
	{
		Wizard: game.Wizard{
			Name:             "Glacier Thread Weaver",
			PrimaryElement:   game.Ice,
			SecondaryElement: game.Myth,
			Attack:           0.46,
			Defense:          0.78,
			Health:           0.70,
			Healing:          0.34,
			Arcane:           0.72,
			CombatStyle:      "Patient controller who pricks, slows, and redirects with surgical calm.",
			Spells: []game.Spell{
				{Name: "Needle of Permafrost", Type: game.SpellDamage, Description: "A hair-thin icicle stitches a precise seam through armor gaps.", Element: game.Ice, Strength: 0.64},
				{Name: "Stillness Loom", Type: game.SpellBuff, Description: "Silvery threads hush motion, tightening poise and guard.", Element: game.Ice, Strength: 0.68},
				{Name: "Mirrored Sigil", Type: game.SpellDebuff, Description: "A reflective rune flips intent, dulling the foe's next gambit.", Element: game.Myth, Strength: 0.62},
				{Name: "Snowblind Parable", Type: game.SpellDamage, Description: "A pale tale condenses as flurries that bite at exposed will.", Element: game.Myth, Strength: 0.52},
			},
		},
		Preview: "Faint hoarfrost sketches careful lines; each motion measured, with strength kept in reserve for well-placed replies.",
	},
	{
		Wizard: game.Wizard{
			Name:             "Rimebreaker Vanguard",
			PrimaryElement:   game.Ice,
			SecondaryElement: game.Balance,
			Attack:           0.58,
			Defense:          0.84,
			Health:           0.82,
			Healing:          0.28,
			Arcane:           0.44,
			CombatStyle:      "Tanky line-holder who wins ground inch by inch.",
			Spells: []game.Spell{
				{Name: "Glacial Ramline", Type: game.SpellDamage, Description: "A wedge of blue ice bucks forward to shove the target off axis.", Element: game.Ice, Strength: 0.61},
				{Name: "Braced Isotherm", Type: game.SpellBuff, Description: "A stable temperature shell stiffens resolve and footing.", Element: game.Balance, Strength: 0.66},
				{Name: "Fracture Timing", Type: game.SpellDebuff, Description: "Hairline cracks crawl underfoot, throwing rhythm out of step.", Element: game.Ice, Strength: 0.73},
				{Name: "Sleet Hook", Type: game.SpellDamage, Description: "A hooked slab skates low, sweeping legs in a cold snap.", Element: game.Ice, Strength: 0.49},
			},
		},
		Preview: "Footfalls land like anchors; breath steams in steady columns, posture built to meet weight with weight.",
	},
	{
		Wizard: game.Wizard{
			Name:             "Tempest Crossfader",
			PrimaryElement:   game.Storm,
			SecondaryElement: game.Myth,
			Attack:           0.83,
			Defense:          0.24,
			Health:           0.44,
			Healing:          0.20,
			Arcane:           0.77,
			CombatStyle:      "All-in burst initiator who overwhelms with tempo spikes.",
			Spells: []game.Spell{
				{Name: "Forked Drop", Type: game.SpellDamage, Description: "A split bolt slams twice from mismatched angles.", Element: game.Storm, Strength: 0.88},
				{Name: "Phase Crackle", Type: game.SpellDebuff, Description: "A static veil desyncs the foe's cues and timing.", Element: game.Myth, Strength: 0.69},
				{Name: "Capacitor Spinup", Type: game.SpellBuff, Description: "Coiled charge hums under the skin, priming the next strike.", Element: game.Storm, Strength: 0.62},
				{Name: "Whiplash Strobe", Type: game.SpellDamage, Description: "Lightning strobes in a curt snap that stings and fades.", Element: game.Storm, Strength: 0.54},
			},
		},
		Preview: "Light flickers, timing stutters; the approach spikes like weather breaking faster than footing can hold.",
	},
	{
		Wizard: game.Wizard{
			Name:             "Gale Net Cartographer",
			PrimaryElement:   game.Storm,
			SecondaryElement: game.Balance,
			Attack:           0.60,
			Defense:          0.52,
			Health:           0.55,
			Healing:          0.26,
			Arcane:           0.68,
			CombatStyle:      "Map-maker tactician who shepherds foes into stormy traps.",
			Spells: []game.Spell{
				{Name: "Isobar Lash", Type: game.SpellDamage, Description: "Pressure lines snap like cords that welt the target.", Element: game.Storm, Strength: 0.63},
				{Name: "Crosswind Grid", Type: game.SpellDebuff, Description: "A lattice of gusts pens the foe into unfavorable lanes.", Element: game.Balance, Strength: 0.66},
				{Name: "Trade-Wind Meter", Type: game.SpellBuff, Description: "Reads the flow, easing casts and smoothing stance.", Element: game.Storm, Strength: 0.55},
				{Name: "Cyclone Pincer", Type: game.SpellDamage, Description: "Two small vortices converge, pinching from either flank.", Element: game.Storm, Strength: 0.57},
			},
		},
		Preview: "Drafts seem to map unseen lanes; pressure nudges rather than crushes, narrowing options one step at a time.",
	},
	{
		Wizard: game.Wizard{
			Name:             "Verdant Ward Alchemist",
			PrimaryElement:   game.Life,
			SecondaryElement: game.Balance,
			Attack:           0.44,
			Defense:          0.62,
			Health:           0.80,
			Healing:          0.86,
			Arcane:           0.58,
			CombatStyle:      "Sustain-heavy guardian who grinds through attrition and timely heals.",
			Spells: []game.Spell{
				{Name: "Chlorophyll Surge", Type: game.SpellDamage, Description: "Idk get attacked by chlorophyll nerd.", Element: game.Life, Strength: 0.82},
				{Name: "Rootbound Brace", Type: game.SpellBuff, Description: "Roots knit into greaves, steadying posture and guard.", Element: game.Balance, Strength: 0.61},
				{Name: "Bramble Rebuke", Type: game.SpellDamage, Description: "A crown of thorns snaps outward in a sudden ring.", Element: game.Life, Strength: 0.49},
				{Name: "Pollen Lull", Type: game.SpellDebuff, Description: "Soft golden dust saps vigor and focus.", Element: game.Life, Strength: 0.67},
			},
		},
		Preview: "The ground softens with quiet green; vigor lingers in their wake, edges muted by slow, steady renewal.",
	},
	{
		Wizard: game.Wizard{
			Name:             "Orchard Cutlass Corsair",
			PrimaryElement:   game.Life,
			SecondaryElement: game.Fire,
			Attack:           0.70,
			Defense:          0.48,
			Health:           0.64,
			Healing:          0.52,
			Arcane:           0.50,
			CombatStyle:      "Skirmishing duelist who mixes cuts with restorative beats.",
			Spells: []game.Spell{
				{Name: "Applewood Slash", Type: game.SpellDamage, Description: "A curved blade of sweet smoke carves a bright arc.", Element: game.Fire, Strength: 0.66},
				{Name: "Sapling Rally", Type: game.SpellBuff, Description: "Young shoots spring up, lending vigor to each motion.", Element: game.Life, Strength: 0.58},
				{Name: "Cider Sting", Type: game.SpellDebuff, Description: "A tart spray stings eyes and dulls bite.", Element: game.Life, Strength: 0.55},
				{Name: "Bonfire Grapnel", Type: game.SpellDamage, Description: "A flaming hook snags and yanks the foe off balance.", Element: game.Fire, Strength: 0.72},
			},
		},
		Preview: "Sweet smoke and sparks trace quick arcs; footwork lively, with breath that steadies between swings.",
	},
	{
		Wizard: game.Wizard{
			Name:             "Pale Reliquary Pontiff",
			PrimaryElement:   game.Death,
			SecondaryElement: game.Myth,
			Attack:           0.71,
			Defense:          0.50,
			Health:           0.52,
			Healing:          0.38,
			Arcane:           0.76,
			CombatStyle:      "Pressure priest who withers and punctures in solemn rhythms.",
			Spells: []game.Spell{
				{Name: "Ash Benediction", Type: game.SpellDebuff, Description: "A gray blessing leaves limbs leaden and hopes thin.", Element: game.Death, Strength: 0.74},
				{Name: "Reliquary Spike", Type: game.SpellDamage, Description: "A bone reliquary cracks open, firing a shard of loss.", Element: game.Death, Strength: 0.79},
				{Name: "Procession of Echoes", Type: game.SpellBuff, Description: "Ghostly choristers steady the caster's cadence.", Element: game.Myth, Strength: 0.56},
				{Name: "Catafalque Drop", Type: game.SpellDamage, Description: "A shadow bier collapses forward in a crushing slide.", Element: game.Death, Strength: 0.66},
			},
		},
		Preview: "Gray motes orbit to a measured hymn; impacts linger, as if something is taken each time.",
	},
	{
		Wizard: game.Wizard{
			Name:             "Graveglass Cutpurse",
			PrimaryElement:   game.Death,
			SecondaryElement: game.Ice,
			Attack:           0.57,
			Defense:          0.64,
			Health:           0.60,
			Healing:          0.30,
			Arcane:           0.62,
			CombatStyle:      "Attrition thief who chips, chills, and collects due.",
			Spells: []game.Spell{
				{Name: "Funeral Filigree", Type: game.SpellBuff, Description: "Cold etchings creep across armor, tightening seams shut.", Element: game.Ice, Strength: 0.63},
				{Name: "Mournhook", Type: game.SpellDamage, Description: "A hooked shadow tugs a piece of the foe's edge away.", Element: game.Death, Strength: 0.61},
				{Name: "Last Breath Tax", Type: game.SpellDebuff, Description: "A toll is called at each inhale, skimming strength.", Element: game.Death, Strength: 0.72},
				{Name: "Tombfrost Skewer", Type: game.SpellDamage, Description: "A brittle spear of hoarfrost snaps and drives in.", Element: game.Ice, Strength: 0.58},
			},
		},
		Preview: "Air cools around close movements; small cuts add up, a chill settling in the joints.",
	},
	{
		Wizard: game.Wizard{
			Name:             "Labyrinth Stage Conjuror",
			PrimaryElement:   game.Myth,
			SecondaryElement: game.Storm,
			Attack:           0.41,
			Defense:          0.44,
			Health:           0.50,
			Healing:          0.36,
			Arcane:           0.88,
			CombatStyle:      "Trickster conductor who toys with expectations before the strike.",
			Spells: []game.Spell{
				{Name: "Curtain of Doubles", Type: game.SpellBuff, Description: "Velvet folds part to reveal convincing stand-ins.", Element: game.Myth, Strength: 0.74},
				{Name: "Misdeal Reality", Type: game.SpellDebuff, Description: "Rules shuffle; the foe's sure thing turns sideways.", Element: game.Myth, Strength: 0.77},
				{Name: "Trapdoor Crescendo", Type: game.SpellDamage, Description: "Floorboards drum, then vanish under a burst of light.", Element: game.Storm, Strength: 0.59},
				{Name: "Wireframe Riddle", Type: game.SpellDebuff, Description: "A riddle binds in glowing lines that snag intent.", Element: game.Myth, Strength: 0.68},
			},
		},
		Preview: "Angles feel off by a hair; presence swells when you look away, as if the trick holds the charge.",
	},
	{
		Wizard: game.Wizard{
			Name:             "Cipher Mask Warden",
			PrimaryElement:   game.Myth,
			SecondaryElement: game.Balance,
			Attack:           0.52,
			Defense:          0.58,
			Health:           0.62,
			Healing:          0.42,
			Arcane:           0.74,
			CombatStyle:      "Control-leaning sentinel who edits the fight's terms.",
			Spells: []game.Spell{
				{Name: "Glyph Lock", Type: game.SpellDebuff, Description: "A sigil clicks shut, jamming aggressive lines.", Element: game.Myth, Strength: 0.71},
				{Name: "Counterpoise Charm", Type: game.SpellBuff, Description: "A measured charm sets stance square and steady.", Element: game.Balance, Strength: 0.60},
				{Name: "Maskbreaker Feint", Type: game.SpellDamage, Description: "A false opening invites a sharp, masked thrust.", Element: game.Myth, Strength: 0.57},
				{Name: "Evenhand Edict", Type: game.SpellDebuff, Description: "A calm decree dulls spikes and flattens surges.", Element: game.Balance, Strength: 0.65},
			},
		},
		Preview: "Clean lines flicker and fade; pressure arrives by degrees, the tempo tidied more than broken.",
	},
	{
		Wizard: game.Wizard{
			Name:             "Fulcrum Iron Magistrate",
			PrimaryElement:   game.Balance,
			SecondaryElement: game.Fire,
			Attack:           0.60,
			Defense:          0.74,
			Health:           0.76,
			Healing:          0.38,
			Arcane:           0.58,
			CombatStyle:      "Methodical bruiser who punishes greed with tidy counters.",
			Spells: []game.Spell{
				{Name: "Scaleside Rebuke", Type: game.SpellDamage, Description: "A weighted strike lands at the pivot of overreach.", Element: game.Balance, Strength: 0.62},
				{Name: "Counterweight Oath", Type: game.SpellBuff, Description: "An oath steels posture and redistributes strain.", Element: game.Balance, Strength: 0.66},
				{Name: "Verdict Spark", Type: game.SpellDamage, Description: "A tight spark snaps from the gavel's invisible edge.", Element: game.Fire, Strength: 0.55},
				{Name: "Overrule", Type: game.SpellDebuff, Description: "A crisp motion voids the foe's advantage this turn.", Element: game.Balance, Strength: 0.70},
			},
		},
		Preview: "Gestures fall in balanced beats; missteps feel heavier than hits, and momentum rarely strays for long.",
	},
	{
		Wizard: game.Wizard{
			Name:             "Ecliptic Arbor Arbiter",
			PrimaryElement:   game.Balance,
			SecondaryElement: game.Life,
			Attack:           0.48,
			Defense:          0.80,
			Health:           0.82,
			Healing:          0.46,
			Arcane:           0.60,
			CombatStyle:      "High-defense arbiter who shapes tempo and lanes.",
			Spells: []game.Spell{
				{Name: "Umbra Parry", Type: game.SpellBuff, Description: "A crescent shade settles across guard and shoulder.", Element: game.Balance, Strength: 0.72},
				{Name: "Radial Check", Type: game.SpellDebuff, Description: "Spokes of force arrest wild swings mid-arc.", Element: game.Balance, Strength: 0.68},
				{Name: "Ringwood Strike", Type: game.SpellDamage, Description: "A band of living wood tightens and snaps forward.", Element: game.Life, Strength: 0.57},
				{Name: "Harmonic Push", Type: game.SpellDamage, Description: "A gentle wave stacks into a sudden, centered shove.", Element: game.Balance, Strength: 0.60},
			},
		},
		Preview: "A dim ring turns with leaf-scented hush; efforts skid off in arcs as the pace drifts toward their center.",
	},
}
