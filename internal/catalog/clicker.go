package catalog

import "gameforge/internal/model"

func clickerTemplate() model.Template {
	return model.Template{
		ID:            "cookie-clicker",
		Name:          "Cookie Clicker",
		Description:   "An incremental clicker: click the target to earn currency, buy producers that earn for you, and watch the numbers climb.",
		Category:      "idle",
		Complexity:    "beginner",
		EstimatedTime: "5 minutes",
		Tags:          []string{"clicker", "idle", "incremental", "casual", "one-button"},
		Version:       "1.2.0",
		Structure: model.GameStructure{
			Scenes:    []string{"main"},
			Mechanics: []string{"click-to-earn", "producers", "exponential-costs", "autosave"},
			CoreLoop:  "Click the target to earn currency, spend currency on producers, producers earn currency every tick, costs grow with each purchase.",
			Framework: "vanilla",
		},
		Prebuilt: model.PrebuiltContent{
			Story: model.PrebuiltStory{
				Title:      "The Bakery",
				Setting:    "A small family bakery that dreams of feeding the whole world.",
				Premise:    "Every empire starts with a single cookie.",
				Characters: []string{"The Baker", "Grandma"},
			},
			Assets: model.PrebuiltAssets{
				Art:   []string{"click-target", "background", "producer-icons"},
				Audio: []string{"click", "purchase"},
				UI:    []string{"counter-panel", "store-panel"},
			},
			Gameplay: model.PrebuiltGameplay{
				Objectives:  []string{"Earn your first 100 of the currency", "Own one of every producer", "Reach one million"},
				Controls:    []string{"Mouse click / tap: earn currency", "Click a producer: buy it"},
				Progression: "Producer costs grow geometrically by the cost multiplier; production scales linearly with owned producers.",
			},
		},
		Options: model.CustomizationOptions{
			Themes: []model.ThemeOption{
				{
					ID:          "classic-bakery",
					Name:        "Classic Bakery",
					Description: "Warm browns and golden cookies.",
					AssetOverrides: map[string]string{
						"CLICK_TARGET_IMAGE": "assets/bakery/cookie.png",
						"BACKGROUND_IMAGE":   "assets/bakery/kitchen.png",
					},
					ColorScheme: map[string]string{
						"PRIMARY_COLOR":    "#8B4513",
						"SECONDARY_COLOR":  "#D2691E",
						"BACKGROUND_COLOR": "#FFF8DC",
						"TEXT_COLOR":       "#3E2723",
						"ACCENT_COLOR":     "#FFD700",
					},
				},
				{
					ID:          "space-mining",
					Name:        "Space Mining",
					Description: "Crack asteroids for minerals in deep space.",
					AssetOverrides: map[string]string{
						"CLICK_TARGET_IMAGE": "assets/space/asteroid.png",
						"BACKGROUND_IMAGE":   "assets/space/starfield.png",
					},
					ColorScheme: map[string]string{
						"PRIMARY_COLOR":    "#1B1F3B",
						"SECONDARY_COLOR":  "#3D5A80",
						"BACKGROUND_COLOR": "#0B0C1A",
						"TEXT_COLOR":       "#E0FBFC",
						"ACCENT_COLOR":     "#98C1D9",
					},
					Variables: map[string]string{
						"GAME_TITLE":        "Space Miner",
						"CURRENCY_NAME":     "Minerals",
						"CURRENCY_ICON":     "💎",
						"CLICK_TARGET_NAME": "Asteroid",
						"UPGRADE_1_NAME":    "Mining Drone",
						"UPGRADE_2_NAME":    "Laser Drill",
						"UPGRADE_3_NAME":    "Asteroid Tug",
						"UPGRADE_4_NAME":    "Orbital Refinery",
						"GOLDEN_BONUS_NAME": "Comet Shard",
					},
				},
				{
					ID:          "enchanted-forest",
					Name:        "Enchanted Forest",
					Description: "Gather mana from an ancient glowing tree.",
					AssetOverrides: map[string]string{
						"CLICK_TARGET_IMAGE": "assets/forest/mana-tree.png",
						"BACKGROUND_IMAGE":   "assets/forest/glade.png",
					},
					ColorScheme: map[string]string{
						"PRIMARY_COLOR":    "#2D6A4F",
						"SECONDARY_COLOR":  "#52B788",
						"BACKGROUND_COLOR": "#081C15",
						"TEXT_COLOR":       "#D8F3DC",
						"ACCENT_COLOR":     "#B7E4C7",
					},
					Variables: map[string]string{
						"GAME_TITLE":        "Mana Grove",
						"CURRENCY_NAME":     "Mana",
						"CURRENCY_ICON":     "✨",
						"CLICK_TARGET_NAME": "Mana Tree",
						"UPGRADE_1_NAME":    "Sprite",
						"UPGRADE_2_NAME":    "Druid",
						"UPGRADE_3_NAME":    "Moon Well",
						"UPGRADE_4_NAME":    "Ancient Circle",
						"GOLDEN_BONUS_NAME": "Fairy Ring",
					},
				},
			},
			Difficulties: []model.DifficultyOption{
				{
					ID:          "easy",
					Name:        "Easy",
					Description: "Cheap producers and generous clicks.",
					ParameterAdjustments: map[string]string{
						"COST_MULTIPLIER":       "1.10",
						"BASE_CLICK_VALUE":      "2",
						"PRODUCTION_MULTIPLIER": "1.5",
						"STARTING_CURRENCY":     "50",
					},
				},
				{
					ID:          "normal",
					Name:        "Normal",
					Description: "The classic curve.",
					ParameterAdjustments: map[string]string{
						"COST_MULTIPLIER":       "1.15",
						"BASE_CLICK_VALUE":      "1",
						"PRODUCTION_MULTIPLIER": "1",
						"STARTING_CURRENCY":     "0",
					},
				},
				{
					ID:          "hard",
					Name:        "Hard",
					Description: "Steep costs and slower producers.",
					ParameterAdjustments: map[string]string{
						"COST_MULTIPLIER":       "1.25",
						"BASE_CLICK_VALUE":      "1",
						"PRODUCTION_MULTIPLIER": "0.75",
						"STARTING_CURRENCY":     "0",
					},
				},
			},
			Mechanics: []model.MechanicOption{
				{
					ID:             "golden-bonus",
					Name:           "Golden Bonus",
					Description:    "A rare golden target appears and multiplies production for a short time.",
					Flag:           "ENABLE_GOLDEN_BONUS",
					RequiredAssets: []string{"golden-bonus-sprite"},
				},
				{
					ID:             "achievements",
					Name:           "Achievements",
					Description:    "Milestones that pop a banner when reached.",
					Flag:           "ENABLE_ACHIEVEMENTS",
					RequiredAssets: []string{"achievement-badge"},
				},
				{
					ID:             "prestige",
					Name:           "Prestige",
					Description:    "Reset progress for a permanent production bonus.",
					Flag:           "ENABLE_PRESTIGE",
					RequiredAssets: []string{"prestige-star"},
					Variables:      map[string]string{"PRESTIGE_THRESHOLD": "1000000"},
				},
			},
			Visuals: []model.VisualOption{
				{ID: "particles", Name: "Click Particles", Description: "Small bursts on every click.", Variables: map[string]string{"ENABLE_PARTICLES": "true"}},
				{ID: "number-popups", Name: "Number Popups", Description: "Floating +N numbers.", Variables: map[string]string{"ENABLE_NUMBER_POPUPS": "true"}},
				{ID: "large-font", Name: "Large Font", Description: "Bigger counter text.", Variables: map[string]string{"COUNTER_FONT_SIZE": "64px"}},
			},
		},
		Variables: map[string]string{
			"GAME_TITLE":              "Cookie Clicker",
			"GAME_DESCRIPTION":        "Click the cookie. Buy things. Click more.",
			"CURRENCY_NAME":           "Cookies",
			"CURRENCY_ICON":           "🍪",
			"CLICK_TARGET_NAME":       "Big Cookie",
			"CLICK_TARGET_IMAGE":      "assets/bakery/cookie.png",
			"BACKGROUND_IMAGE":        "assets/bakery/kitchen.png",
			"PRIMARY_COLOR":           "#8B4513",
			"SECONDARY_COLOR":         "#D2691E",
			"BACKGROUND_COLOR":        "#FFF8DC",
			"TEXT_COLOR":              "#3E2723",
			"ACCENT_COLOR":            "#FFD700",
			"FONT_FAMILY":             "'Trebuchet MS', Helvetica, sans-serif",
			"COUNTER_FONT_SIZE":       "40px",
			"BASE_CLICK_VALUE":        "1",
			"STARTING_CURRENCY":       "0",
			"COST_MULTIPLIER":         "1.15",
			"PRODUCTION_MULTIPLIER":   "1",
			"AUTOSAVE_INTERVAL":       "30000",
			"UPGRADE_1_NAME":          "Cursor",
			"UPGRADE_1_COST":          "15",
			"UPGRADE_1_RATE":          "0.1",
			"UPGRADE_2_NAME":          "Grandma",
			"UPGRADE_2_COST":          "100",
			"UPGRADE_2_RATE":          "1",
			"UPGRADE_3_NAME":          "Farm",
			"UPGRADE_3_COST":          "1100",
			"UPGRADE_3_RATE":          "8",
			"UPGRADE_4_NAME":          "Factory",
			"UPGRADE_4_COST":          "12000",
			"UPGRADE_4_RATE":          "47",
			"ENABLE_GOLDEN_BONUS":     "false",
			"GOLDEN_BONUS_NAME":       "Golden Cookie",
			"GOLDEN_BONUS_CHANCE":     "0.002",
			"GOLDEN_BONUS_MULTIPLIER": "7",
			"GOLDEN_BONUS_DURATION":   "10000",
			"ENABLE_ACHIEVEMENTS":     "false",
			"ENABLE_PRESTIGE":         "false",
			"PRESTIGE_THRESHOLD":      "1000000",
			"ENABLE_PARTICLES":        "false",
			"ENABLE_NUMBER_POPUPS":    "false",
		},
		Code: model.CodeTemplates{
			HTML:   clickerHTML,
			Main:   clickerMain,
			CSS:    clickerCSS,
			Config: clickerConfig,
			Readme: clickerReadme,
		},
	}
}

const clickerHTML = `<!DOCTYPE html>
<html lang="en">
<head>
  <meta charset="UTF-8">
  <meta name="viewport" content="width=device-width, initial-scale=1.0">
  <title>{{GAME_TITLE}}</title>
  <link rel="stylesheet" href="styles.css">
</head>
<body>
  <header>
    <h1>{{GAME_TITLE}}</h1>
    <p class="subtitle">{{GAME_DESCRIPTION}}</p>
  </header>
  <main class="layout">
    <section class="clicker">
      <div id="counter" class="counter">0 {{CURRENCY_NAME}}</div>
      <div id="rate" class="rate">0 per second</div>
      <button id="click-target" class="click-target" aria-label="{{CLICK_TARGET_NAME}}">
        <img src="{{CLICK_TARGET_IMAGE}}" alt="{{CLICK_TARGET_NAME}}" draggable="false">
      </button>
{{#ENABLE_PRESTIGE}}
      <button id="prestige" class="prestige" disabled>Prestige</button>
      <div id="prestige-level" class="rate"></div>
{{/ENABLE_PRESTIGE}}
    </section>
    <section class="store">
      <h2>Store</h2>
      <ul id="store-list"></ul>
    </section>
  </main>
{{#ENABLE_GOLDEN_BONUS}}
  <button id="golden-bonus" class="golden-bonus hidden">{{GOLDEN_BONUS_NAME}}</button>
{{/ENABLE_GOLDEN_BONUS}}
{{#ENABLE_ACHIEVEMENTS}}
  <div id="achievement-banner" class="achievement-banner hidden"></div>
{{/ENABLE_ACHIEVEMENTS}}
  <script src="config.js"></script>
  <script src="game.js"></script>
</body>
</html>
`

const clickerCSS = `:root {
  --primary: {{PRIMARY_COLOR}};
  --secondary: {{SECONDARY_COLOR}};
  --background: {{BACKGROUND_COLOR}};
  --text: {{TEXT_COLOR}};
  --accent: {{ACCENT_COLOR}};
}

* { box-sizing: border-box; }

body {
  margin: 0;
  min-height: 100vh;
  font-family: {{FONT_FAMILY}};
  color: var(--text);
  background: var(--background) url("{{BACKGROUND_IMAGE}}") center / cover no-repeat fixed;
}

header {
  text-align: center;
  padding: 16px;
  background: var(--primary);
  color: var(--accent);
}

.subtitle { margin: 4px 0 0; opacity: 0.8; }

.layout {
  display: grid;
  grid-template-columns: 2fr 1fr;
  gap: 24px;
  padding: 24px;
}

.clicker { text-align: center; }

.counter {
  font-size: {{COUNTER_FONT_SIZE}};
  font-weight: bold;
}

.rate { opacity: 0.8; margin-bottom: 16px; }

.click-target {
  border: none;
  background: transparent;
  cursor: pointer;
  transition: transform 0.05s ease-in-out;
}

.click-target img { width: 256px; height: 256px; }
.click-target:active { transform: scale(0.95); }

.store {
  background: rgba(0, 0, 0, 0.15);
  border: 2px solid var(--secondary);
  border-radius: 8px;
  padding: 12px;
}

.store ul { list-style: none; margin: 0; padding: 0; }

.store li {
  display: flex;
  justify-content: space-between;
  padding: 8px;
  margin-bottom: 6px;
  border-radius: 4px;
  background: var(--secondary);
  color: var(--background);
  cursor: pointer;
}

.store li.locked { opacity: 0.5; cursor: not-allowed; }

.prestige, .golden-bonus {
  padding: 8px 16px;
  border: 2px solid var(--accent);
  border-radius: 16px;
  background: var(--primary);
  color: var(--accent);
  cursor: pointer;
}

.golden-bonus { position: fixed; }

.achievement-banner {
  position: fixed;
  bottom: 16px;
  left: 50%;
  transform: translateX(-50%);
  padding: 12px 24px;
  border-radius: 8px;
  background: var(--accent);
  color: var(--primary);
}

.popup {
  position: fixed;
  pointer-events: none;
  font-weight: bold;
  color: var(--accent);
  animation: rise 0.8s ease-out forwards;
}

.particle {
  position: fixed;
  width: 6px;
  height: 6px;
  border-radius: 50%;
  pointer-events: none;
  background: var(--accent);
  animation: burst 0.6s ease-out forwards;
}

.hidden { display: none; }

@keyframes rise {
  from { opacity: 1; transform: translateY(0); }
  to { opacity: 0; transform: translateY(-60px); }
}

@keyframes burst {
  from { opacity: 1; }
  to { opacity: 0; transform: translate(var(--dx), var(--dy)); }
}
`

const clickerConfig = `// Game configuration for {{GAME_TITLE}}.
const CONFIG = {
  title: "{{GAME_TITLE}}",
  currency: {
    name: "{{CURRENCY_NAME}}",
    icon: "{{CURRENCY_ICON}}",
    starting: {{STARTING_CURRENCY}},
  },
  clickValue: {{BASE_CLICK_VALUE}},
  productionMultiplier: {{PRODUCTION_MULTIPLIER}},
  autosaveInterval: {{AUTOSAVE_INTERVAL}},
  producers: [
    { id: "p1", name: "{{UPGRADE_1_NAME}}", baseCost: {{UPGRADE_1_COST}}, rate: {{UPGRADE_1_RATE}} },
    { id: "p2", name: "{{UPGRADE_2_NAME}}", baseCost: {{UPGRADE_2_COST}}, rate: {{UPGRADE_2_RATE}} },
    { id: "p3", name: "{{UPGRADE_3_NAME}}", baseCost: {{UPGRADE_3_COST}}, rate: {{UPGRADE_3_RATE}} },
    { id: "p4", name: "{{UPGRADE_4_NAME}}", baseCost: {{UPGRADE_4_COST}}, rate: {{UPGRADE_4_RATE}} },
  ],
  goldenBonus: {
    enabled: {{ENABLE_GOLDEN_BONUS}},
    name: "{{GOLDEN_BONUS_NAME}}",
    chance: {{GOLDEN_BONUS_CHANCE}},
    multiplier: {{GOLDEN_BONUS_MULTIPLIER}},
    duration: {{GOLDEN_BONUS_DURATION}},
  },
  achievements: {{ENABLE_ACHIEVEMENTS}},
  prestige: {
    enabled: {{ENABLE_PRESTIGE}},
    threshold: {{PRESTIGE_THRESHOLD}},
  },
  effects: {
    particles: {{ENABLE_PARTICLES}},
    numberPopups: {{ENABLE_NUMBER_POPUPS}},
  },
};
`

const clickerMain = `// {{GAME_TITLE}} - generated by GameForge.
const CURRENCY_NAME = "{{CURRENCY_NAME}}";
const COST_MULTIPLIER = {{COST_MULTIPLIER}};
const SAVE_KEY = "gameforge-clicker-save";

const state = {
  currency: CONFIG.currency.starting,
  totalEarned: 0,
  owned: Object.fromEntries(CONFIG.producers.map((p) => [p.id, 0])),
  boost: 1,
  prestigeLevel: 0,
  unlocked: [],
};

function format(n) {
  if (n < 1000) return Math.floor(n).toString();
  const units = ["K", "M", "B", "T", "Qa", "Qi"];
  let i = -1;
  while (n >= 1000 && i < units.length - 1) {
    n /= 1000;
    i++;
  }
  return n.toFixed(2) + units[i];
}

function costOf(producer) {
  return Math.ceil(producer.baseCost * Math.pow(COST_MULTIPLIER, state.owned[producer.id]));
}

function productionPerSecond() {
  const base = CONFIG.producers.reduce((sum, p) => sum + p.rate * state.owned[p.id], 0);
  const prestigeBonus = 1 + state.prestigeLevel * 0.1;
  return base * CONFIG.productionMultiplier * state.boost * prestigeBonus;
}

function earn(amount) {
  state.currency += amount;
  state.totalEarned += amount;
}

function render() {
  document.getElementById("counter").textContent =
    format(state.currency) + " " + CURRENCY_NAME + " " + CONFIG.currency.icon;
  document.getElementById("rate").textContent = format(productionPerSecond()) + " per second";

  const list = document.getElementById("store-list");
  list.innerHTML = "";
  for (const p of CONFIG.producers) {
    const li = document.createElement("li");
    const cost = costOf(p);
    li.className = state.currency >= cost ? "" : "locked";
    li.innerHTML = "<span>" + p.name + " (" + state.owned[p.id] + ")</span><span>" + format(cost) + "</span>";
    li.addEventListener("click", () => buy(p));
    list.appendChild(li);
  }
{{#ENABLE_PRESTIGE}}
  const prestigeButton = document.getElementById("prestige");
  prestigeButton.disabled = state.totalEarned < CONFIG.prestige.threshold;
  document.getElementById("prestige-level").textContent = "Prestige level " + state.prestigeLevel;
{{/ENABLE_PRESTIGE}}
}

function buy(producer) {
  const cost = costOf(producer);
  if (state.currency < cost) return;
  state.currency -= cost;
  state.owned[producer.id]++;
  render();
}

function spawnEffects(event, amount) {
{{#ENABLE_NUMBER_POPUPS}}
  const popup = document.createElement("div");
  popup.className = "popup";
  popup.textContent = "+" + format(amount);
  popup.style.left = event.clientX + "px";
  popup.style.top = event.clientY + "px";
  document.body.appendChild(popup);
  setTimeout(() => popup.remove(), 800);
{{/ENABLE_NUMBER_POPUPS}}
{{#ENABLE_PARTICLES}}
  for (let i = 0; i < 8; i++) {
    const dot = document.createElement("div");
    dot.className = "particle";
    dot.style.left = event.clientX + "px";
    dot.style.top = event.clientY + "px";
    dot.style.setProperty("--dx", (Math.random() * 80 - 40) + "px");
    dot.style.setProperty("--dy", (Math.random() * 80 - 40) + "px");
    document.body.appendChild(dot);
    setTimeout(() => dot.remove(), 600);
  }
{{/ENABLE_PARTICLES}}
}

document.getElementById("click-target").addEventListener("click", (event) => {
  const amount = CONFIG.clickValue * state.boost;
  earn(amount);
  spawnEffects(event, amount);
  render();
});

{{#ENABLE_GOLDEN_BONUS}}
const goldenButton = document.getElementById("golden-bonus");

function maybeSpawnGolden() {
  if (!goldenButton.classList.contains("hidden") || state.boost > 1) return;
  if (Math.random() > CONFIG.goldenBonus.chance) return;
  goldenButton.style.left = Math.random() * (window.innerWidth - 120) + "px";
  goldenButton.style.top = Math.random() * (window.innerHeight - 60) + "px";
  goldenButton.classList.remove("hidden");
  setTimeout(() => goldenButton.classList.add("hidden"), 8000);
}

goldenButton.addEventListener("click", () => {
  goldenButton.classList.add("hidden");
  state.boost = CONFIG.goldenBonus.multiplier;
  setTimeout(() => (state.boost = 1), CONFIG.goldenBonus.duration);
});
{{/ENABLE_GOLDEN_BONUS}}

{{#ENABLE_ACHIEVEMENTS}}
const ACHIEVEMENTS = [
  { id: "first", label: "First " + CURRENCY_NAME, test: () => state.totalEarned >= 1 },
  { id: "hundred", label: "100 " + CURRENCY_NAME, test: () => state.totalEarned >= 100 },
  { id: "collector", label: "One of everything", test: () => CONFIG.producers.every((p) => state.owned[p.id] > 0) },
  { id: "million", label: "Millionaire", test: () => state.totalEarned >= 1000000 },
];

function checkAchievements() {
  for (const a of ACHIEVEMENTS) {
    if (state.unlocked.includes(a.id) || !a.test()) continue;
    state.unlocked.push(a.id);
    const banner = document.getElementById("achievement-banner");
    banner.textContent = "Achievement unlocked: " + a.label;
    banner.classList.remove("hidden");
    setTimeout(() => banner.classList.add("hidden"), 3000);
  }
}
{{/ENABLE_ACHIEVEMENTS}}

{{#ENABLE_PRESTIGE}}
document.getElementById("prestige").addEventListener("click", () => {
  if (state.totalEarned < CONFIG.prestige.threshold) return;
  state.prestigeLevel++;
  state.currency = CONFIG.currency.starting;
  state.totalEarned = 0;
  for (const id of Object.keys(state.owned)) state.owned[id] = 0;
  render();
});
{{/ENABLE_PRESTIGE}}

function save() {
  localStorage.setItem(SAVE_KEY, JSON.stringify(state));
}

function load() {
  const raw = localStorage.getItem(SAVE_KEY);
  if (!raw) return;
  try {
    Object.assign(state, JSON.parse(raw));
    state.boost = 1;
  } catch (err) {
    console.warn("Ignoring corrupt save", err);
  }
}

const TICK_MS = 100;
setInterval(() => {
  earn(productionPerSecond() * (TICK_MS / 1000));
{{#ENABLE_GOLDEN_BONUS}}
  maybeSpawnGolden();
{{/ENABLE_GOLDEN_BONUS}}
{{#ENABLE_ACHIEVEMENTS}}
  checkAchievements();
{{/ENABLE_ACHIEVEMENTS}}
  render();
}, TICK_MS);

setInterval(save, CONFIG.autosaveInterval);
load();
render();
`

const clickerReadme = `# {{GAME_TITLE}}

{{GAME_DESCRIPTION}}

Click the {{CLICK_TARGET_NAME}} to earn {{CURRENCY_NAME}}, then spend them in the store on producers
that earn for you. Every purchase raises that producer's price by a factor of {{COST_MULTIPLIER}}.

## Running

Open index.html in any modern browser. Progress is saved to localStorage every
{{AUTOSAVE_INTERVAL}} ms.

## Files

- index.html: page shell
- config.js: tunable numbers (costs, rates, feature switches)
- game.js: game loop
- styles.css: look and feel
`
