package catalog

import "gameforge/internal/model"

func flappyTemplate() model.Template {
	return model.Template{
		ID:            "flappy-bird",
		Name:          "Flappy Bird",
		Description:   "Tap to flap through an endless line of gaps without touching the pipes.",
		Category:      "arcade",
		Complexity:    "beginner",
		EstimatedTime: "5 minutes",
		Tags:          []string{"arcade", "endless", "one-button", "mobile", "physics"},
		Version:       "1.0.2",
		Structure: model.GameStructure{
			Scenes:    []string{"title", "play", "game-over"},
			Mechanics: []string{"gravity", "flap", "scrolling-obstacles", "score"},
			CoreLoop:  "Gravity pulls the bird down; each tap gives it a flap of lift; passing a gap scores a point; touching a pipe or the ground ends the run.",
			Framework: "vanilla",
		},
		Prebuilt: model.PrebuiltContent{
			Story: model.PrebuiltStory{
				Title:      "Wings Over the Pipes",
				Setting:    "A sunny sky crowded with green pipes.",
				Premise:    "A tiny bird tries to fly as far as it can.",
				Characters: []string{"The Bird"},
			},
			Assets: model.PrebuiltAssets{
				Art:   []string{"bird", "pipe", "ground", "sky"},
				Audio: []string{"flap", "score", "hit"},
				UI:    []string{"score-counter", "start-overlay"},
			},
			Gameplay: model.PrebuiltGameplay{
				Objectives:  []string{"Fly through as many gaps as possible"},
				Controls:    []string{"Space / click / tap: flap"},
				Progression: "Pipes keep coming forever; the score is the number of gaps passed.",
			},
		},
		Options: model.CustomizationOptions{
			Themes: []model.ThemeOption{
				{
					ID:          "daytime",
					Name:        "Daytime",
					Description: "Blue sky and green pipes.",
					ColorScheme: map[string]string{
						"SKY_COLOR":    "#70C5CE",
						"PIPE_COLOR":   "#5EBD3E",
						"BIRD_COLOR":   "#F8E71C",
						"GROUND_COLOR": "#DED895",
						"TEXT_COLOR":   "#FFFFFF",
					},
				},
				{
					ID:          "night",
					Name:        "Night Flight",
					Description: "An owl crossing a moonlit city.",
					ColorScheme: map[string]string{
						"SKY_COLOR":    "#0B1D3A",
						"PIPE_COLOR":   "#3A4A6B",
						"BIRD_COLOR":   "#C9A66B",
						"GROUND_COLOR": "#1B1B2F",
						"TEXT_COLOR":   "#F5F5DC",
					},
					Variables: map[string]string{
						"GAME_TITLE":    "Night Owl",
						"PLAYER_NAME":   "owl",
						"OBSTACLE_NAME": "tower",
					},
				},
				{
					ID:          "underwater",
					Name:        "Underwater",
					Description: "A fish swimming between coral columns.",
					AssetOverrides: map[string]string{
						"bird": "fish",
						"pipe": "coral",
					},
					ColorScheme: map[string]string{
						"SKY_COLOR":    "#006994",
						"PIPE_COLOR":   "#FF7F50",
						"BIRD_COLOR":   "#FFA500",
						"GROUND_COLOR": "#C2B280",
						"TEXT_COLOR":   "#E0FFFF",
					},
					Variables: map[string]string{
						"GAME_TITLE":    "Flappy Fish",
						"PLAYER_NAME":   "fish",
						"OBSTACLE_NAME": "coral",
						"GRAVITY":       "0.25",
					},
				},
			},
			Difficulties: []model.DifficultyOption{
				{
					ID:          "easy",
					Name:        "Easy",
					Description: "Wide gaps and slow pipes.",
					ParameterAdjustments: map[string]string{
						"GAP_SIZE":      "190",
						"PIPE_SPEED":    "2",
						"PIPE_INTERVAL": "1800",
					},
				},
				{
					ID:          "normal",
					Name:        "Normal",
					Description: "The classic feel.",
					ParameterAdjustments: map[string]string{
						"GAP_SIZE":      "150",
						"PIPE_SPEED":    "2.5",
						"PIPE_INTERVAL": "1500",
					},
				},
				{
					ID:          "hard",
					Name:        "Hard",
					Description: "Narrow gaps at high speed.",
					ParameterAdjustments: map[string]string{
						"GAP_SIZE":      "115",
						"PIPE_SPEED":    "3.5",
						"PIPE_INTERVAL": "1200",
					},
				},
			},
			Mechanics: []model.MechanicOption{
				{
					ID:          "moving-pipes",
					Name:        "Moving Pipes",
					Description: "Gaps drift up and down while scrolling.",
					Flag:        "ENABLE_MOVING_PIPES",
				},
				{
					ID:             "coins",
					Name:           "Coins",
					Description:    "Collect coins inside gaps for bonus points.",
					Flag:           "ENABLE_COINS",
					RequiredAssets: []string{"coin"},
				},
				{
					ID:             "medals",
					Name:           "Medals",
					Description:    "Award bronze, silver, and gold medals at score milestones.",
					Flag:           "ENABLE_MEDALS",
					RequiredAssets: []string{"medal-bronze", "medal-silver", "medal-gold"},
				},
			},
			Visuals: []model.VisualOption{
				{ID: "parallax", Name: "Parallax Clouds", Description: "Drifting background clouds.", Variables: map[string]string{"SHOW_CLOUDS": "true"}},
				{ID: "tilt", Name: "Bird Tilt", Description: "Rotate the bird with its velocity.", Variables: map[string]string{"TILT_FACTOR": "0.08"}},
				{ID: "big-bird", Name: "Big Bird", Description: "A larger player sprite.", Variables: map[string]string{"BIRD_SIZE": "28"}},
			},
		},
		Variables: map[string]string{
			"GAME_TITLE":          "Flappy Bird",
			"GAME_DESCRIPTION":    "Tap to flap. Do not touch the pipes.",
			"PLAYER_NAME":         "bird",
			"OBSTACLE_NAME":       "pipe",
			"SKY_COLOR":           "#70C5CE",
			"PIPE_COLOR":          "#5EBD3E",
			"BIRD_COLOR":          "#F8E71C",
			"GROUND_COLOR":        "#DED895",
			"COIN_COLOR":          "#FFD700",
			"TEXT_COLOR":          "#FFFFFF",
			"FONT_FAMILY":         "'Trebuchet MS', sans-serif",
			"CANVAS_WIDTH":        "400",
			"CANVAS_HEIGHT":       "600",
			"GROUND_HEIGHT":       "80",
			"GRAVITY":             "0.35",
			"FLAP_STRENGTH":       "-6.5",
			"MAX_FALL_SPEED":      "10",
			"BIRD_SIZE":           "20",
			"GAP_SIZE":            "150",
			"PIPE_WIDTH":          "60",
			"PIPE_SPEED":          "2.5",
			"PIPE_INTERVAL":       "1500",
			"PIPE_DRIFT":          "40",
			"COIN_POINTS":         "5",
			"MEDAL_BRONZE":        "10",
			"MEDAL_SILVER":        "25",
			"MEDAL_GOLD":          "50",
			"TILT_FACTOR":         "0",
			"SHOW_CLOUDS":         "false",
			"ENABLE_MOVING_PIPES": "false",
			"ENABLE_COINS":        "false",
			"ENABLE_MEDALS":       "false",
		},
		Code: model.CodeTemplates{
			HTML:   flappyHTML,
			Main:   flappyMain,
			CSS:    flappyCSS,
			Config: flappyConfig,
			Readme: flappyReadme,
		},
	}
}

const flappyHTML = `<!DOCTYPE html>
<html lang="en">
<head>
  <meta charset="UTF-8">
  <meta name="viewport" content="width=device-width, initial-scale=1.0">
  <title>{{GAME_TITLE}}</title>
  <link rel="stylesheet" href="styles.css">
</head>
<body>
  <div class="stage">
    <canvas id="game"></canvas>
    <div id="score" class="score">0</div>
    <div id="overlay" class="overlay">
      <h1>{{GAME_TITLE}}</h1>
      <p id="overlay-text">{{GAME_DESCRIPTION}}</p>
{{#ENABLE_MEDALS}}
      <p id="medal" class="medal"></p>
{{/ENABLE_MEDALS}}
      <p class="hint">Press Space or tap to start</p>
    </div>
  </div>
  <script src="config.js"></script>
  <script src="game.js"></script>
</body>
</html>
`

const flappyCSS = `body {
  margin: 0;
  min-height: 100vh;
  display: flex;
  align-items: center;
  justify-content: center;
  background: #222;
  font-family: {{FONT_FAMILY}};
  color: {{TEXT_COLOR}};
  user-select: none;
}

.stage {
  position: relative;
  width: {{CANVAS_WIDTH}}px;
  height: {{CANVAS_HEIGHT}}px;
}

canvas {
  display: block;
  background: {{SKY_COLOR}};
  border-radius: 8px;
}

.score {
  position: absolute;
  top: 24px;
  width: 100%;
  text-align: center;
  font-size: 48px;
  font-weight: bold;
  text-shadow: 2px 2px 0 rgba(0, 0, 0, 0.4);
}

.overlay {
  position: absolute;
  inset: 0;
  display: flex;
  flex-direction: column;
  align-items: center;
  justify-content: center;
  background: rgba(0, 0, 0, 0.35);
  border-radius: 8px;
  text-align: center;
}

.overlay.hidden { display: none; }
.medal { font-size: 22px; font-weight: bold; }
.hint { opacity: 0.8; }
`

const flappyConfig = `// Game configuration for {{GAME_TITLE}}.
const CONFIG = {
  width: {{CANVAS_WIDTH}},
  height: {{CANVAS_HEIGHT}},
  groundHeight: {{GROUND_HEIGHT}},
  gravity: {{GRAVITY}},
  flapStrength: {{FLAP_STRENGTH}},
  maxFallSpeed: {{MAX_FALL_SPEED}},
  birdSize: {{BIRD_SIZE}},
  gapSize: {{GAP_SIZE}},
  pipeWidth: {{PIPE_WIDTH}},
  pipeSpeed: {{PIPE_SPEED}},
  pipeInterval: {{PIPE_INTERVAL}},
  pipeDrift: {{PIPE_DRIFT}},
  tiltFactor: {{TILT_FACTOR}},
  showClouds: {{SHOW_CLOUDS}},
  colors: {
    sky: "{{SKY_COLOR}}",
    pipe: "{{PIPE_COLOR}}",
    bird: "{{BIRD_COLOR}}",
    ground: "{{GROUND_COLOR}}",
    coin: "{{COIN_COLOR}}",
  },
  coins: {
    enabled: {{ENABLE_COINS}},
    points: {{COIN_POINTS}},
  },
  medals: {
    bronze: {{MEDAL_BRONZE}},
    silver: {{MEDAL_SILVER}},
    gold: {{MEDAL_GOLD}},
  },
};
`

const flappyMain = `// {{GAME_TITLE}} - generated by GameForge.
const canvas = document.getElementById("game");
const ctx = canvas.getContext("2d");
canvas.width = CONFIG.width;
canvas.height = CONFIG.height;

const overlay = document.getElementById("overlay");
const overlayText = document.getElementById("overlay-text");
const scoreEl = document.getElementById("score");
const playArea = CONFIG.height - CONFIG.groundHeight;

let bird, pipes, clouds, score, running, lastSpawn, lastTime;

function reset() {
  bird = { x: CONFIG.width * 0.25, y: playArea / 2, vy: 0 };
  pipes = [];
  clouds = [];
  score = 0;
  lastSpawn = 0;
  scoreEl.textContent = "0";
  if (CONFIG.showClouds) {
    for (let i = 0; i < 5; i++) {
      clouds.push({ x: Math.random() * CONFIG.width, y: Math.random() * playArea * 0.5, r: 20 + Math.random() * 20 });
    }
  }
}

function spawnPipe() {
  const margin = 40;
  const top = margin + Math.random() * (playArea - CONFIG.gapSize - margin * 2);
  const pipe = { x: CONFIG.width, top: top, base: top, phase: Math.random() * Math.PI * 2, passed: false, coin: null };
  if (CONFIG.coins.enabled) {
    pipe.coin = { y: top + CONFIG.gapSize / 2, taken: false };
  }
  pipes.push(pipe);
}

function flap() {
  if (!running) return start();
  bird.vy = CONFIG.flapStrength;
}

function medalFor(points) {
  if (points >= CONFIG.medals.gold) return "Gold medal!";
  if (points >= CONFIG.medals.silver) return "Silver medal!";
  if (points >= CONFIG.medals.bronze) return "Bronze medal!";
  return "";
}

function gameOver() {
  running = false;
  overlayText.textContent = "The {{PLAYER_NAME}} crashed into a {{OBSTACLE_NAME}}. Score: " + score;
{{#ENABLE_MEDALS}}
  document.getElementById("medal").textContent = medalFor(score);
{{/ENABLE_MEDALS}}
  overlay.classList.remove("hidden");
}

function update(dt, now) {
  bird.vy = Math.min(bird.vy + CONFIG.gravity * dt, CONFIG.maxFallSpeed);
  bird.y += bird.vy * dt;

  if (now - lastSpawn > CONFIG.pipeInterval) {
    spawnPipe();
    lastSpawn = now;
  }

  for (const pipe of pipes) {
    pipe.x -= CONFIG.pipeSpeed * dt;
{{#ENABLE_MOVING_PIPES}}
    pipe.top = pipe.base + Math.sin(now / 600 + pipe.phase) * CONFIG.pipeDrift;
    if (pipe.coin) pipe.coin.y = pipe.top + CONFIG.gapSize / 2;
{{/ENABLE_MOVING_PIPES}}
    if (!pipe.passed && pipe.x + CONFIG.pipeWidth < bird.x) {
      pipe.passed = true;
      score++;
    }
    const half = CONFIG.birdSize / 2;
    const inColumn = bird.x + half > pipe.x && bird.x - half < pipe.x + CONFIG.pipeWidth;
    if (inColumn && (bird.y - half < pipe.top || bird.y + half > pipe.top + CONFIG.gapSize)) {
      return gameOver();
    }
    if (pipe.coin && !pipe.coin.taken && inColumn && Math.abs(bird.y - pipe.coin.y) < CONFIG.birdSize) {
      pipe.coin.taken = true;
      score += CONFIG.coins.points;
    }
  }
  pipes = pipes.filter((p) => p.x + CONFIG.pipeWidth > 0);

  for (const cloud of clouds) {
    cloud.x -= CONFIG.pipeSpeed * 0.3 * dt;
    if (cloud.x + cloud.r < 0) cloud.x = CONFIG.width + cloud.r;
  }

  if (bird.y + CONFIG.birdSize / 2 > playArea || bird.y < 0) return gameOver();
  scoreEl.textContent = score;
}

function draw() {
  ctx.fillStyle = CONFIG.colors.sky;
  ctx.fillRect(0, 0, CONFIG.width, CONFIG.height);

  ctx.fillStyle = "rgba(255, 255, 255, 0.7)";
  for (const cloud of clouds) {
    ctx.beginPath();
    ctx.arc(cloud.x, cloud.y, cloud.r, 0, Math.PI * 2);
    ctx.fill();
  }

  for (const pipe of pipes) {
    ctx.fillStyle = CONFIG.colors.pipe;
    ctx.fillRect(pipe.x, 0, CONFIG.pipeWidth, pipe.top);
    ctx.fillRect(pipe.x, pipe.top + CONFIG.gapSize, CONFIG.pipeWidth, playArea - pipe.top - CONFIG.gapSize);
    if (pipe.coin && !pipe.coin.taken) {
      ctx.fillStyle = CONFIG.colors.coin;
      ctx.beginPath();
      ctx.arc(pipe.x + CONFIG.pipeWidth / 2, pipe.coin.y, 8, 0, Math.PI * 2);
      ctx.fill();
    }
  }

  ctx.fillStyle = CONFIG.colors.ground;
  ctx.fillRect(0, playArea, CONFIG.width, CONFIG.groundHeight);

  ctx.save();
  ctx.translate(bird.x, bird.y);
  ctx.rotate(Math.max(-0.5, Math.min(1.2, bird.vy * CONFIG.tiltFactor)));
  ctx.fillStyle = CONFIG.colors.bird;
  ctx.beginPath();
  ctx.arc(0, 0, CONFIG.birdSize / 2, 0, Math.PI * 2);
  ctx.fill();
  ctx.restore();
}

function loop(now) {
  const dt = lastTime ? Math.min((now - lastTime) / 16.67, 3) : 1;
  lastTime = now;
  if (running) update(dt, now);
  draw();
  requestAnimationFrame(loop);
}

function start() {
  reset();
  running = true;
  lastSpawn = performance.now();
  overlay.classList.add("hidden");
}

document.addEventListener("keydown", (e) => {
  if (e.code === "Space") {
    e.preventDefault();
    flap();
  }
});
canvas.addEventListener("pointerdown", flap);
overlay.addEventListener("pointerdown", flap);

reset();
requestAnimationFrame(loop);
`

const flappyReadme = `# {{GAME_TITLE}}

{{GAME_DESCRIPTION}}

Keep the {{PLAYER_NAME}} in the air and slip through the gap in every {{OBSTACLE_NAME}}.
The gap is {{GAP_SIZE}} pixels tall.

## Controls

- Space, click, or tap: flap

## Running

Open index.html in a browser. No build step is needed.
`
