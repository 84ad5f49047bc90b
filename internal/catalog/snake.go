package catalog

import "gameforge/internal/model"

func snakeTemplate() model.Template {
	return model.Template{
		ID:            "snake",
		Name:          "Snake",
		Description:   "Steer a growing snake around a grid, eat food, and avoid your own tail.",
		Category:      "arcade",
		Complexity:    "beginner",
		EstimatedTime: "5 minutes",
		Tags:          []string{"arcade", "classic", "grid", "keyboard", "retro"},
		Version:       "1.1.0",
		Structure: model.GameStructure{
			Scenes:    []string{"title", "play", "game-over"},
			Mechanics: []string{"grid-movement", "growth", "self-collision", "score"},
			CoreLoop:  "Every tick the snake moves one cell; eating food grows it and raises the score; hitting a wall or itself ends the run.",
			Framework: "vanilla",
		},
		Prebuilt: model.PrebuiltContent{
			Story: model.PrebuiltStory{
				Title:      "The Hungry Snake",
				Setting:    "A walled garden full of apples.",
				Premise:    "A small snake with a big appetite.",
				Characters: []string{"The Snake"},
			},
			Assets: model.PrebuiltAssets{
				Art:   []string{"snake-head", "snake-body", "food"},
				Audio: []string{"eat", "game-over"},
				UI:    []string{"score-board", "start-overlay"},
			},
			Gameplay: model.PrebuiltGameplay{
				Objectives:  []string{"Eat as much food as possible", "Beat your high score"},
				Controls:    []string{"Arrow keys / WASD: turn", "Space: start or restart", "P: pause"},
				Progression: "The snake speeds up every few pieces of food.",
			},
		},
		Options: model.CustomizationOptions{
			Themes: []model.ThemeOption{
				{
					ID:          "classic",
					Name:        "Classic",
					Description: "Green snake, red apples, dark board.",
					ColorScheme: map[string]string{
						"SNAKE_COLOR":      "#4CAF50",
						"SNAKE_HEAD_COLOR": "#2E7D32",
						"FOOD_COLOR":       "#F44336",
						"BACKGROUND_COLOR": "#111111",
						"GRID_COLOR":       "#1E1E1E",
						"TEXT_COLOR":       "#FFFFFF",
					},
				},
				{
					ID:          "neon",
					Name:        "Neon",
					Description: "Glowing synthwave lines.",
					ColorScheme: map[string]string{
						"SNAKE_COLOR":      "#00FFF7",
						"SNAKE_HEAD_COLOR": "#FF00E6",
						"FOOD_COLOR":       "#FFE600",
						"BACKGROUND_COLOR": "#0D0221",
						"GRID_COLOR":       "#1A0B3D",
						"TEXT_COLOR":       "#FF00E6",
					},
					Variables: map[string]string{
						"GAME_TITLE": "Neon Serpent",
						"FOOD_NAME":  "energy cell",
					},
				},
				{
					ID:          "space",
					Name:        "Space Worm",
					Description: "A cosmic worm eating stars.",
					ColorScheme: map[string]string{
						"SNAKE_COLOR":      "#B39DDB",
						"SNAKE_HEAD_COLOR": "#7E57C2",
						"FOOD_COLOR":       "#FFF59D",
						"BACKGROUND_COLOR": "#000014",
						"GRID_COLOR":       "#0A0A2A",
						"TEXT_COLOR":       "#E1F5FE",
					},
					Variables: map[string]string{
						"GAME_TITLE": "Space Worm",
						"FOOD_NAME":  "star",
					},
				},
			},
			Difficulties: []model.DifficultyOption{
				{
					ID:          "easy",
					Name:        "Easy",
					Description: "Slow snake, walls wrap around.",
					ParameterAdjustments: map[string]string{
						"TICK_MS":         "180",
						"SPEEDUP_EVERY":   "8",
						"WRAP_WALLS":      "true",
						"POINTS_PER_FOOD": "5",
					},
				},
				{
					ID:          "normal",
					Name:        "Normal",
					Description: "Classic speed, solid walls.",
					ParameterAdjustments: map[string]string{
						"TICK_MS":         "120",
						"SPEEDUP_EVERY":   "5",
						"WRAP_WALLS":      "false",
						"POINTS_PER_FOOD": "10",
					},
				},
				{
					ID:          "hard",
					Name:        "Hard",
					Description: "Fast snake that speeds up quickly.",
					ParameterAdjustments: map[string]string{
						"TICK_MS":         "80",
						"SPEEDUP_EVERY":   "3",
						"WRAP_WALLS":      "false",
						"POINTS_PER_FOOD": "20",
					},
				},
			},
			Mechanics: []model.MechanicOption{
				{
					ID:             "obstacles",
					Name:           "Obstacles",
					Description:    "Rocks appear on the board as the snake grows.",
					Flag:           "ENABLE_OBSTACLES",
					RequiredAssets: []string{"rock"},
				},
				{
					ID:             "bonus-food",
					Name:           "Bonus Food",
					Description:    "Rare golden food worth extra points that disappears after a while.",
					Flag:           "ENABLE_BONUS_FOOD",
					RequiredAssets: []string{"bonus-food"},
				},
				{
					ID:          "high-score",
					Name:        "High Score",
					Description: "Remember the best score in localStorage.",
					Flag:        "ENABLE_HIGH_SCORE",
				},
			},
			Visuals: []model.VisualOption{
				{ID: "grid-lines", Name: "Grid Lines", Description: "Draw the board grid.", Variables: map[string]string{"SHOW_GRID": "true"}},
				{ID: "rounded", Name: "Rounded Segments", Description: "Round snake segments.", Variables: map[string]string{"SEGMENT_RADIUS": "6"}},
				{ID: "big-board", Name: "Big Board", Description: "A larger playfield.", Variables: map[string]string{"GRID_SIZE": "30"}},
			},
		},
		Variables: map[string]string{
			"GAME_TITLE":        "Snake",
			"GAME_DESCRIPTION":  "Eat, grow, and do not bite your tail.",
			"FOOD_NAME":         "apple",
			"SNAKE_COLOR":       "#4CAF50",
			"SNAKE_HEAD_COLOR":  "#2E7D32",
			"FOOD_COLOR":        "#F44336",
			"BONUS_FOOD_COLOR":  "#FFD700",
			"OBSTACLE_COLOR":    "#795548",
			"BACKGROUND_COLOR":  "#111111",
			"GRID_COLOR":        "#1E1E1E",
			"TEXT_COLOR":        "#FFFFFF",
			"FONT_FAMILY":       "'Courier New', monospace",
			"GRID_SIZE":         "20",
			"CELL_SIZE":         "20",
			"TICK_MS":           "120",
			"MIN_TICK_MS":       "50",
			"SPEEDUP_EVERY":     "5",
			"SPEEDUP_STEP":      "8",
			"WRAP_WALLS":        "false",
			"POINTS_PER_FOOD":   "10",
			"BONUS_FOOD_POINTS": "50",
			"BONUS_FOOD_CHANCE": "0.1",
			"BONUS_FOOD_TTL":    "5000",
			"OBSTACLE_EVERY":    "4",
			"SEGMENT_RADIUS":    "0",
			"SHOW_GRID":         "false",
			"ENABLE_OBSTACLES":  "false",
			"ENABLE_BONUS_FOOD": "false",
			"ENABLE_HIGH_SCORE": "false",
		},
		Code: model.CodeTemplates{
			HTML:   snakeHTML,
			Main:   snakeMain,
			CSS:    snakeCSS,
			Config: snakeConfig,
			Readme: snakeReadme,
		},
	}
}

const snakeHTML = `<!DOCTYPE html>
<html lang="en">
<head>
  <meta charset="UTF-8">
  <meta name="viewport" content="width=device-width, initial-scale=1.0">
  <title>{{GAME_TITLE}}</title>
  <link rel="stylesheet" href="styles.css">
</head>
<body>
  <div class="wrapper">
    <h1>{{GAME_TITLE}}</h1>
    <div class="hud">
      <span>Score: <strong id="score">0</strong></span>
{{#ENABLE_HIGH_SCORE}}
      <span>Best: <strong id="best">0</strong></span>
{{/ENABLE_HIGH_SCORE}}
    </div>
    <div class="board">
      <canvas id="game"></canvas>
      <div id="overlay" class="overlay">
        <p id="overlay-text">{{GAME_DESCRIPTION}}</p>
        <p class="hint">Press Space to start</p>
      </div>
    </div>
  </div>
  <script src="config.js"></script>
  <script src="game.js"></script>
</body>
</html>
`

const snakeCSS = `:root {
  --background: {{BACKGROUND_COLOR}};
  --text: {{TEXT_COLOR}};
  --snake: {{SNAKE_COLOR}};
}

body {
  margin: 0;
  min-height: 100vh;
  display: flex;
  align-items: center;
  justify-content: center;
  background: var(--background);
  color: var(--text);
  font-family: {{FONT_FAMILY}};
}

.wrapper { text-align: center; }

h1 {
  margin: 0 0 8px;
  letter-spacing: 4px;
  text-transform: uppercase;
  color: var(--snake);
}

.hud {
  display: flex;
  justify-content: space-between;
  margin-bottom: 8px;
}

.board { position: relative; display: inline-block; }

canvas {
  display: block;
  border: 2px solid var(--snake);
  image-rendering: pixelated;
}

.overlay {
  position: absolute;
  inset: 0;
  display: flex;
  flex-direction: column;
  align-items: center;
  justify-content: center;
  background: rgba(0, 0, 0, 0.65);
}

.overlay.hidden { display: none; }
.hint { opacity: 0.7; font-size: 14px; }
`

const snakeConfig = `// Game configuration for {{GAME_TITLE}}.
const CONFIG = {
  gridSize: {{GRID_SIZE}},
  cellSize: {{CELL_SIZE}},
  tickMs: {{TICK_MS}},
  minTickMs: {{MIN_TICK_MS}},
  speedupEvery: {{SPEEDUP_EVERY}},
  speedupStep: {{SPEEDUP_STEP}},
  wrapWalls: {{WRAP_WALLS}},
  pointsPerFood: {{POINTS_PER_FOOD}},
  showGrid: {{SHOW_GRID}},
  segmentRadius: {{SEGMENT_RADIUS}},
  colors: {
    snake: "{{SNAKE_COLOR}}",
    head: "{{SNAKE_HEAD_COLOR}}",
    food: "{{FOOD_COLOR}}",
    bonus: "{{BONUS_FOOD_COLOR}}",
    obstacle: "{{OBSTACLE_COLOR}}",
    background: "{{BACKGROUND_COLOR}}",
    grid: "{{GRID_COLOR}}",
  },
  bonusFood: {
    enabled: {{ENABLE_BONUS_FOOD}},
    points: {{BONUS_FOOD_POINTS}},
    chance: {{BONUS_FOOD_CHANCE}},
    ttl: {{BONUS_FOOD_TTL}},
  },
  obstacles: {
    enabled: {{ENABLE_OBSTACLES}},
    every: {{OBSTACLE_EVERY}},
  },
};
`

const snakeMain = `// {{GAME_TITLE}} - generated by GameForge.
const canvas = document.getElementById("game");
const ctx = canvas.getContext("2d");
canvas.width = CONFIG.gridSize * CONFIG.cellSize;
canvas.height = CONFIG.gridSize * CONFIG.cellSize;

const overlay = document.getElementById("overlay");
const overlayText = document.getElementById("overlay-text");
const scoreEl = document.getElementById("score");

const DIRS = {
  ArrowUp: [0, -1], KeyW: [0, -1],
  ArrowDown: [0, 1], KeyS: [0, 1],
  ArrowLeft: [-1, 0], KeyA: [-1, 0],
  ArrowRight: [1, 0], KeyD: [1, 0],
};

let snake, dir, nextDir, food, score, eaten, tickMs, timer, running, paused;
let obstacles = [];
let bonus = null;

function randomCell() {
  return [Math.floor(Math.random() * CONFIG.gridSize), Math.floor(Math.random() * CONFIG.gridSize)];
}

function occupied(cell) {
  const same = (c) => c[0] === cell[0] && c[1] === cell[1];
  return snake.some(same) || obstacles.some(same) || (food && same(food));
}

function freeCell() {
  let cell = randomCell();
  while (occupied(cell)) cell = randomCell();
  return cell;
}

function reset() {
  const mid = Math.floor(CONFIG.gridSize / 2);
  snake = [[mid, mid], [mid - 1, mid], [mid - 2, mid]];
  dir = [1, 0];
  nextDir = dir;
  obstacles = [];
  bonus = null;
  food = null;
  food = freeCell();
  score = 0;
  eaten = 0;
  tickMs = CONFIG.tickMs;
  scoreEl.textContent = "0";
}

function schedule() {
  clearInterval(timer);
  timer = setInterval(step, tickMs);
}

function gameOver() {
  running = false;
  clearInterval(timer);
{{#ENABLE_HIGH_SCORE}}
  const best = Math.max(score, Number(localStorage.getItem("gameforge-snake-best") || 0));
  localStorage.setItem("gameforge-snake-best", String(best));
  document.getElementById("best").textContent = best;
{{/ENABLE_HIGH_SCORE}}
  overlayText.textContent = "Game over! You ate " + eaten + " {{FOOD_NAME}}s for " + score + " points.";
  overlay.classList.remove("hidden");
}

function step() {
  if (paused) return;
  dir = nextDir;
  let head = [snake[0][0] + dir[0], snake[0][1] + dir[1]];

  if (CONFIG.wrapWalls) {
    head = [(head[0] + CONFIG.gridSize) % CONFIG.gridSize, (head[1] + CONFIG.gridSize) % CONFIG.gridSize];
  } else if (head[0] < 0 || head[1] < 0 || head[0] >= CONFIG.gridSize || head[1] >= CONFIG.gridSize) {
    return gameOver();
  }

  const hits = (c) => c[0] === head[0] && c[1] === head[1];
  if (snake.some(hits) || obstacles.some(hits)) return gameOver();

  snake.unshift(head);
  if (hits(food)) {
    eaten++;
    score += CONFIG.pointsPerFood;
    food = freeCell();
    if (eaten % CONFIG.speedupEvery === 0) {
      tickMs = Math.max(CONFIG.minTickMs, tickMs - CONFIG.speedupStep);
      schedule();
    }
{{#ENABLE_OBSTACLES}}
    if (eaten % CONFIG.obstacles.every === 0) obstacles.push(freeCell());
{{/ENABLE_OBSTACLES}}
{{#ENABLE_BONUS_FOOD}}
    if (!bonus && Math.random() < CONFIG.bonusFood.chance) {
      bonus = { cell: freeCell(), expires: Date.now() + CONFIG.bonusFood.ttl };
    }
{{/ENABLE_BONUS_FOOD}}
  } else {
    snake.pop();
  }
{{#ENABLE_BONUS_FOOD}}
  if (bonus && hits(bonus.cell)) {
    score += CONFIG.bonusFood.points;
    bonus = null;
  } else if (bonus && Date.now() > bonus.expires) {
    bonus = null;
  }
{{/ENABLE_BONUS_FOOD}}
  scoreEl.textContent = score;
  draw();
}

function cell(c, color) {
  const size = CONFIG.cellSize;
  ctx.fillStyle = color;
  ctx.beginPath();
  ctx.roundRect(c[0] * size + 1, c[1] * size + 1, size - 2, size - 2, CONFIG.segmentRadius);
  ctx.fill();
}

function draw() {
  ctx.fillStyle = CONFIG.colors.background;
  ctx.fillRect(0, 0, canvas.width, canvas.height);
  if (CONFIG.showGrid) {
    ctx.strokeStyle = CONFIG.colors.grid;
    for (let i = 0; i <= CONFIG.gridSize; i++) {
      const p = i * CONFIG.cellSize;
      ctx.beginPath();
      ctx.moveTo(p, 0);
      ctx.lineTo(p, canvas.height);
      ctx.moveTo(0, p);
      ctx.lineTo(canvas.width, p);
      ctx.stroke();
    }
  }
  obstacles.forEach((o) => cell(o, CONFIG.colors.obstacle));
  cell(food, CONFIG.colors.food);
  if (bonus) cell(bonus.cell, CONFIG.colors.bonus);
  snake.forEach((s, i) => cell(s, i === 0 ? CONFIG.colors.head : CONFIG.colors.snake));
}

function start() {
  reset();
  running = true;
  paused = false;
  overlay.classList.add("hidden");
  draw();
  schedule();
}

document.addEventListener("keydown", (e) => {
  if (e.code === "Space") {
    if (!running) start();
    e.preventDefault();
    return;
  }
  if (e.code === "KeyP" && running) {
    paused = !paused;
    return;
  }
  const d = DIRS[e.code];
  if (!d) return;
  if (d[0] === -dir[0] && d[1] === -dir[1]) return;
  nextDir = d;
  e.preventDefault();
});

{{#ENABLE_HIGH_SCORE}}
document.getElementById("best").textContent = localStorage.getItem("gameforge-snake-best") || "0";
{{/ENABLE_HIGH_SCORE}}
reset();
draw();
`

const snakeReadme = `# {{GAME_TITLE}}

{{GAME_DESCRIPTION}}

Guide the snake to each {{FOOD_NAME}}. Every {{SPEEDUP_EVERY}} pieces the snake speeds up,
down to a minimum tick of {{MIN_TICK_MS}} ms.

## Controls

- Arrow keys or WASD: turn
- Space: start or restart
- P: pause

## Running

Open index.html in a browser. No build step is needed.
`
