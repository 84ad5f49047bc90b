package catalog

import "gameforge/internal/model"

const phaserVersion = "3.80.1"

func platformerTemplate() model.Template {
	return model.Template{
		ID:            "platformer",
		Name:          "Platformer",
		Description:   "Run and jump across platforms, collect gems, and reach the goal flag.",
		Category:      "platformer",
		Complexity:    "intermediate",
		EstimatedTime: "15 minutes",
		Tags:          []string{"platformer", "jump", "phaser", "keyboard", "collectibles"},
		Version:       "0.9.0",
		Structure: model.GameStructure{
			Scenes:    []string{"boot", "level", "victory"},
			Mechanics: []string{"arcade-physics", "jump", "collectibles", "hazards", "goal"},
			CoreLoop:  "Move and jump between platforms, collect gems for points, avoid hazards, and touch the flag to finish the level.",
			Framework: "phaser",
			Dependencies: map[string]string{
				"phaser": "^" + phaserVersion,
			},
		},
		Prebuilt: model.PrebuiltContent{
			Story: model.PrebuiltStory{
				Title:      "The Gem Runner",
				Setting:    "Floating islands above the clouds.",
				Premise:    "A nimble hero gathers scattered gems on the way to the flag.",
				Characters: []string{"The Runner", "Spike Crawlers"},
			},
			Assets: model.PrebuiltAssets{
				Art:   []string{"player", "platform", "gem", "spikes", "flag"},
				Audio: []string{"jump", "collect", "hurt", "win"},
				UI:    []string{"score-text", "lives-text"},
			},
			Gameplay: model.PrebuiltGameplay{
				Objectives:  []string{"Reach the flag", "Collect every gem"},
				Controls:    []string{"Left / Right: move", "Up / Space: jump"},
				Progression: "A single hand-built level; falling or touching spikes costs a life.",
			},
		},
		Options: model.CustomizationOptions{
			Themes: []model.ThemeOption{
				{
					ID:          "grassland",
					Name:        "Grassland",
					Description: "Green hills and blue sky.",
					ColorScheme: map[string]string{
						"SKY_COLOR":      "#87CEEB",
						"PLATFORM_COLOR": "#6AA84F",
						"PLAYER_COLOR":   "#E06666",
						"GEM_COLOR":      "#FFD966",
						"HAZARD_COLOR":   "#999999",
						"TEXT_COLOR":     "#1B1B1B",
					},
				},
				{
					ID:          "lava-cave",
					Name:        "Lava Cave",
					Description: "Dark rock over glowing magma.",
					AssetOverrides: map[string]string{
						"spikes": "lava",
						"gem":    "ember",
					},
					ColorScheme: map[string]string{
						"SKY_COLOR":      "#2B0F0E",
						"PLATFORM_COLOR": "#5B3A29",
						"PLAYER_COLOR":   "#F1C232",
						"GEM_COLOR":      "#FF6D01",
						"HAZARD_COLOR":   "#FF0000",
						"TEXT_COLOR":     "#FCE5CD",
					},
					Variables: map[string]string{
						"GAME_TITLE":       "Magma Run",
						"COLLECTIBLE_NAME": "ember",
					},
				},
				{
					ID:          "candy",
					Name:        "Candy Land",
					Description: "Pastel platforms made of sweets.",
					ColorScheme: map[string]string{
						"SKY_COLOR":      "#FDE2F3",
						"PLATFORM_COLOR": "#F48FB1",
						"PLAYER_COLOR":   "#7E57C2",
						"GEM_COLOR":      "#4DD0E1",
						"HAZARD_COLOR":   "#8D6E63",
						"TEXT_COLOR":     "#4A148C",
					},
					Variables: map[string]string{
						"GAME_TITLE":       "Sugar Rush",
						"COLLECTIBLE_NAME": "candy",
					},
				},
			},
			Difficulties: []model.DifficultyOption{
				{
					ID:          "easy",
					Name:        "Easy",
					Description: "Floaty jumps and extra lives.",
					ParameterAdjustments: map[string]string{
						"GRAVITY":       "700",
						"JUMP_VELOCITY": "-480",
						"PLAYER_LIVES":  "5",
						"HAZARD_SPEED":  "40",
					},
				},
				{
					ID:          "normal",
					Name:        "Normal",
					Description: "Standard physics.",
					ParameterAdjustments: map[string]string{
						"GRAVITY":       "900",
						"JUMP_VELOCITY": "-450",
						"PLAYER_LIVES":  "3",
						"HAZARD_SPEED":  "60",
					},
				},
				{
					ID:          "hard",
					Name:        "Hard",
					Description: "Heavy gravity, one life, fast enemies.",
					ParameterAdjustments: map[string]string{
						"GRAVITY":       "1100",
						"JUMP_VELOCITY": "-470",
						"PLAYER_LIVES":  "1",
						"HAZARD_SPEED":  "100",
					},
				},
			},
			Mechanics: []model.MechanicOption{
				{
					ID:          "double-jump",
					Name:        "Double Jump",
					Description: "Jump a second time in mid-air.",
					Flag:        "ENABLE_DOUBLE_JUMP",
				},
				{
					ID:             "moving-platforms",
					Name:           "Moving Platforms",
					Description:    "Some platforms slide back and forth.",
					Flag:           "ENABLE_MOVING_PLATFORMS",
					RequiredAssets: []string{"moving-platform"},
				},
				{
					ID:             "enemies",
					Name:           "Enemies",
					Description:    "Crawlers patrol the platforms.",
					Flag:           "ENABLE_ENEMIES",
					RequiredAssets: []string{"crawler"},
				},
			},
			Visuals: []model.VisualOption{
				{ID: "camera-follow", Name: "Camera Follow", Description: "Wider world with a following camera.", Variables: map[string]string{"WORLD_WIDTH": "1600"}},
				{ID: "pixel-art", Name: "Pixel Art", Description: "Crisp pixel rendering.", Variables: map[string]string{"PIXEL_ART": "true"}},
				{ID: "debug-physics", Name: "Debug Physics", Description: "Show physics bodies.", Variables: map[string]string{"PHYSICS_DEBUG": "true"}},
			},
		},
		Variables: map[string]string{
			"GAME_TITLE":              "Gem Runner",
			"GAME_DESCRIPTION":        "Collect the gems and reach the flag.",
			"COLLECTIBLE_NAME":        "gem",
			"PHASER_VERSION":          phaserVersion,
			"SKY_COLOR":               "#87CEEB",
			"PLATFORM_COLOR":          "#6AA84F",
			"PLAYER_COLOR":            "#E06666",
			"GEM_COLOR":               "#FFD966",
			"HAZARD_COLOR":            "#999999",
			"ENEMY_COLOR":             "#674EA7",
			"FLAG_COLOR":              "#FFFFFF",
			"TEXT_COLOR":              "#1B1B1B",
			"FONT_FAMILY":             "Verdana, sans-serif",
			"CANVAS_WIDTH":            "800",
			"CANVAS_HEIGHT":           "480",
			"WORLD_WIDTH":             "800",
			"GRAVITY":                 "900",
			"PLAYER_SPEED":            "200",
			"JUMP_VELOCITY":           "-450",
			"PLAYER_LIVES":            "3",
			"GEM_POINTS":              "10",
			"HAZARD_SPEED":            "60",
			"PIXEL_ART":               "false",
			"PHYSICS_DEBUG":           "false",
			"ENABLE_DOUBLE_JUMP":      "false",
			"ENABLE_MOVING_PLATFORMS": "false",
			"ENABLE_ENEMIES":          "false",
		},
		Code: model.CodeTemplates{
			HTML:   platformerHTML,
			Main:   platformerMain,
			CSS:    platformerCSS,
			Config: platformerConfig,
			Readme: platformerReadme,
		},
	}
}

const platformerHTML = `<!DOCTYPE html>
<html lang="en">
<head>
  <meta charset="UTF-8">
  <meta name="viewport" content="width=device-width, initial-scale=1.0">
  <title>{{GAME_TITLE}}</title>
  <link rel="stylesheet" href="styles.css">
  <script src="https://cdn.jsdelivr.net/npm/phaser@{{PHASER_VERSION}}/dist/phaser.min.js"></script>
</head>
<body>
  <header>
    <h1>{{GAME_TITLE}}</h1>
    <p>{{GAME_DESCRIPTION}}</p>
  </header>
  <div id="game-container"></div>
  <script src="config.js"></script>
  <script src="game.js"></script>
</body>
</html>
`

const platformerCSS = `body {
  margin: 0;
  background: {{SKY_COLOR}};
  color: {{TEXT_COLOR}};
  font-family: {{FONT_FAMILY}};
  text-align: center;
}

header h1 {
  margin: 16px 0 4px;
}

header p {
  margin: 0 0 12px;
  opacity: 0.8;
}

#game-container {
  display: inline-block;
  border: 4px solid {{PLATFORM_COLOR}};
  border-radius: 6px;
  line-height: 0;
}
`

const platformerConfig = `// Game configuration for {{GAME_TITLE}}.
const CONFIG = {
  width: {{CANVAS_WIDTH}},
  height: {{CANVAS_HEIGHT}},
  worldWidth: {{WORLD_WIDTH}},
  gravity: {{GRAVITY}},
  playerSpeed: {{PLAYER_SPEED}},
  jumpVelocity: {{JUMP_VELOCITY}},
  lives: {{PLAYER_LIVES}},
  gemPoints: {{GEM_POINTS}},
  hazardSpeed: {{HAZARD_SPEED}},
  pixelArt: {{PIXEL_ART}},
  physicsDebug: {{PHYSICS_DEBUG}},
  doubleJump: {{ENABLE_DOUBLE_JUMP}},
  colors: {
    sky: "{{SKY_COLOR}}",
    platform: "{{PLATFORM_COLOR}}",
    player: "{{PLAYER_COLOR}}",
    gem: "{{GEM_COLOR}}",
    hazard: "{{HAZARD_COLOR}}",
    enemy: "{{ENEMY_COLOR}}",
    flag: "{{FLAG_COLOR}}",
    text: "{{TEXT_COLOR}}",
  },
};
`

const platformerMain = `// {{GAME_TITLE}} - generated by GameForge.
const hex = (c) => Phaser.Display.Color.HexStringToColor(c).color;

class LevelScene extends Phaser.Scene {
  constructor() {
    super("level");
  }

  create() {
    this.score = 0;
    this.lives = CONFIG.lives;
    this.jumps = 0;
    this.cameras.main.setBackgroundColor(CONFIG.colors.sky);
    this.physics.world.setBounds(0, 0, CONFIG.worldWidth, CONFIG.height + 100);

    this.platforms = this.physics.add.staticGroup();
    const ground = CONFIG.height - 16;
    for (let x = 0; x < CONFIG.worldWidth; x += 200) {
      if (x !== 400) this.platforms.add(this.add.rectangle(x + 100, ground, 200, 32, hex(CONFIG.colors.platform)));
    }
    const ledges = [[150, ground - 110], [380, ground - 190], [620, ground - 120], [1000, ground - 160], [1300, ground - 220]];
    ledges.filter((l) => l[0] < CONFIG.worldWidth).forEach((l) => {
      this.platforms.add(this.add.rectangle(l[0], l[1], 140, 20, hex(CONFIG.colors.platform)));
    });

    this.player = this.add.rectangle(60, ground - 60, 28, 40, hex(CONFIG.colors.player));
    this.physics.add.existing(this.player);
    this.player.body.setCollideWorldBounds(true);
    this.physics.add.collider(this.player, this.platforms, () => {
      if (this.player.body.blocked.down) this.jumps = 0;
    });

    this.gems = this.physics.add.staticGroup();
    ledges.filter((l) => l[0] < CONFIG.worldWidth).forEach((l) => {
      this.gems.add(this.add.star(l[0], l[1] - 30, 5, 6, 12, hex(CONFIG.colors.gem)));
    });
    this.physics.add.overlap(this.player, this.gems, (player, gem) => {
      gem.destroy();
      this.score += CONFIG.gemPoints;
      this.updateHud();
    });

    this.hazards = this.physics.add.staticGroup();
    this.hazards.add(this.add.triangle(500, ground - 28, 0, 24, 12, 0, 24, 24, hex(CONFIG.colors.hazard)));
    this.physics.add.overlap(this.player, this.hazards, () => this.hurt());

{{#ENABLE_MOVING_PLATFORMS}}
    const mover = this.add.rectangle(480, ground - 60, 120, 18, hex(CONFIG.colors.platform));
    this.physics.add.existing(mover);
    mover.body.setAllowGravity(false).setImmovable(true);
    this.tweens.add({ targets: mover, x: 720, duration: 2400, yoyo: true, repeat: -1 });
    this.physics.add.collider(this.player, mover, () => {
      if (this.player.body.blocked.down) this.jumps = 0;
    });
{{/ENABLE_MOVING_PLATFORMS}}
{{#ENABLE_ENEMIES}}
    this.enemies = this.physics.add.group();
    const crawler = this.add.rectangle(700, ground - 40, 30, 20, hex(CONFIG.colors.enemy));
    this.enemies.add(crawler);
    crawler.body.setVelocityX(CONFIG.hazardSpeed).setBounceX(1).setCollideWorldBounds(true);
    this.physics.add.collider(this.enemies, this.platforms);
    this.physics.add.overlap(this.player, this.enemies, () => this.hurt());
{{/ENABLE_ENEMIES}}

    const flagX = CONFIG.worldWidth - 40;
    this.flag = this.add.rectangle(flagX, ground - 56, 12, 80, hex(CONFIG.colors.flag));
    this.physics.add.existing(this.flag, true);
    this.physics.add.overlap(this.player, this.flag, () => this.win());

    this.cameras.main.setBounds(0, 0, CONFIG.worldWidth, CONFIG.height);
    this.cameras.main.startFollow(this.player);

    this.hud = this.add.text(12, 12, "", { fontSize: "18px", color: CONFIG.colors.text }).setScrollFactor(0);
    this.updateHud();

    this.cursors = this.input.keyboard.createCursorKeys();
    this.spawn = { x: 60, y: ground - 60 };
  }

  updateHud() {
    this.hud.setText("{{COLLECTIBLE_NAME}}s: " + this.score + "   Lives: " + this.lives);
  }

  hurt() {
    this.lives--;
    this.updateHud();
    if (this.lives <= 0) {
      this.scene.start("victory", { won: false, score: this.score });
      return;
    }
    this.player.setPosition(this.spawn.x, this.spawn.y);
    this.player.body.setVelocity(0, 0);
  }

  win() {
    this.scene.start("victory", { won: true, score: this.score });
  }

  update() {
    const body = this.player.body;
    if (this.cursors.left.isDown) {
      body.setVelocityX(-CONFIG.playerSpeed);
    } else if (this.cursors.right.isDown) {
      body.setVelocityX(CONFIG.playerSpeed);
    } else {
      body.setVelocityX(0);
    }

    const jumpPressed = Phaser.Input.Keyboard.JustDown(this.cursors.up) || Phaser.Input.Keyboard.JustDown(this.cursors.space);
    const maxJumps = CONFIG.doubleJump ? 2 : 1;
    if (jumpPressed && (body.blocked.down || this.jumps < maxJumps)) {
      body.setVelocityY(CONFIG.jumpVelocity);
      this.jumps++;
    }

    if (this.player.y > CONFIG.height + 40) this.hurt();
  }
}

class VictoryScene extends Phaser.Scene {
  constructor() {
    super("victory");
  }

  create(data) {
    const msg = data.won ? "You reached the flag!" : "Out of lives.";
    this.add.text(CONFIG.width / 2, CONFIG.height / 2 - 20, msg, { fontSize: "32px", color: CONFIG.colors.text }).setOrigin(0.5);
    this.add.text(CONFIG.width / 2, CONFIG.height / 2 + 24, "Score: " + data.score + " - press Space to play again", { fontSize: "18px", color: CONFIG.colors.text }).setOrigin(0.5);
    this.input.keyboard.once("keydown-SPACE", () => this.scene.start("level"));
  }
}

new Phaser.Game({
  type: Phaser.AUTO,
  parent: "game-container",
  width: CONFIG.width,
  height: CONFIG.height,
  pixelArt: CONFIG.pixelArt,
  physics: {
    default: "arcade",
    arcade: { gravity: { y: CONFIG.gravity }, debug: CONFIG.physicsDebug },
  },
  scene: [LevelScene, VictoryScene],
});
`

const platformerReadme = `# {{GAME_TITLE}}

{{GAME_DESCRIPTION}}

Built with Phaser {{PHASER_VERSION}}. Each {{COLLECTIBLE_NAME}} is worth {{GEM_POINTS}} points and you start with {{PLAYER_LIVES}} lives.

## Controls

- Left / Right arrows: move
- Up arrow or Space: jump

## Running

Open index.html in a browser (Phaser loads from a CDN), or install the
dependencies with npm and serve the folder with any static file server.
`
