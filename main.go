package main

import (
	"fmt"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/widget"
	"github.com/sirupsen/logrus"
)

// difficultyLabels maps the selector entries to difficulties, in
// display order.
var difficultyLabels = []string{"Easy", "Normal", "Hard"}

// AppUI holds all the GUI widgets and the game session.
type AppUI struct {
	session       *Session
	cfg           *Config
	log           *logrus.Logger
	thinking      bool // Latch to ignore clicks while the computer's reply is pending.
	gameOverShown bool // Ensures the game-over dialog and sound fire only once.
	// UI components.
	window fyne.Window
	// Top bar.
	difficultySelect *widget.Select
	startButton      *widget.Button
	// Board.
	cellWidgets [9]*boardCell
	// Status area.
	infoLabel          *widget.Label
	playerScoreLabel   *widget.Label
	computerScoreLabel *widget.Label
	drawScoreLabel     *widget.Label
}

func main() {
	cfg, err := LoadConfig("config.yml")
	if err != nil {
		logrus.WithError(err).Fatal("failed to load configuration")
	}
	log := newLogger(cfg)
	myApp := app.New()
	myApp.Settings().SetTheme(newBoardTheme(myApp.Settings().Theme()))
	myWindow := myApp.NewWindow("Tic-Tac-Toe (Minimax)")
	// Initialize resources after the app is created to avoid deadlocks with Go tooling.
	loadResources()
	myWindow.SetIcon(resourceIcon)
	myWindow.SetFixedSize(true)
	myWindow.Resize(fyne.NewSize(420, 560))
	initAudio(log, cfg.Mute)
	ui := &AppUI{
		session: NewSession(cfg, log),
		cfg:     cfg,
		log:     log,
		window:  myWindow,
	}
	content := ui.buildLayout()
	ui.updateUI() // Initial UI state.
	myWindow.SetContent(content)
	myWindow.CenterOnScreen()
	// Add a confirmation dialog when the user tries to close the window.
	myWindow.SetCloseIntercept(func() {
		dialog.ShowConfirm("Exit", "Are you sure you want to quit?", func(confirmed bool) {
			if confirmed {
				myApp.Quit()
			}
		}, myWindow)
	})
	myWindow.ShowAndRun()
}

func (ui *AppUI) buildLayout() fyne.CanvasObject {
	// Top bar.
	ui.difficultySelect = widget.NewSelect(difficultyLabels, func(s string) {
		for i, label := range difficultyLabels {
			if s == label {
				// The Difficulty enum starts at 1 for Easy, so add 1 to the index.
				ui.setDifficulty(Difficulty(i + 1))
				break
			}
		}
	})
	ui.difficultySelect.PlaceHolder = "Select Difficulty"
	// Fix for truncated text: use a "probe" widget to measure the
	// minimum width of the longest entry, the placeholder here.
	probe := widget.NewSelect([]string{ui.difficultySelect.PlaceHolder}, nil)
	probe.PlaceHolder = ui.difficultySelect.PlaceHolder
	minWidgetSize := fyne.NewSize(probe.MinSize().Width, ui.difficultySelect.MinSize().Height)
	sizedSelect := container.New(&minSizeLayout{min: minWidgetSize}, ui.difficultySelect)
	ui.startButton = widget.NewButton("Start", func() {
		switch ui.session.State() {
		case StateIdle:
			ui.attemptToStartGame()
		case StateGameOver:
			// The finished board stays visible until the user asks for
			// a new game, so restart without a confirmation.
			ui.restartGame()
		default: // An in-progress game.
			dialog.ShowConfirm("Restart", "Are you sure you want to end the current game?", func(confirmed bool) {
				if confirmed {
					ui.restartGame()
				}
			}, ui.window)
		}
	})
	// Score labels are part of the top bar.
	ui.playerScoreLabel = widget.NewLabel("You: 0")
	ui.computerScoreLabel = widget.NewLabel("CPU: 0")
	ui.drawScoreLabel = widget.NewLabel("Draws: 0")
	scoreBox := container.New(layout.NewHBoxLayout(), ui.playerScoreLabel, ui.computerScoreLabel, ui.drawScoreLabel)
	leftButtons := container.New(layout.NewHBoxLayout(), sizedSelect, ui.startButton)
	topBar := container.New(layout.NewBorderLayout(nil, nil, leftButtons, scoreBox), leftButtons, scoreBox)
	// The 3x3 grid of tappable cells.
	gridObjects := make([]fyne.CanvasObject, 0, len(ui.cellWidgets))
	for i := range ui.cellWidgets {
		cellIndex := i
		ui.cellWidgets[i] = newBoardCell(func() {
			ui.playerTaps(cellIndex)
		})
		gridObjects = append(gridObjects, ui.cellWidgets[i])
	}
	grid := container.NewGridWithColumns(3, gridObjects...)
	// Struts keep the board centered with breathing room above and below.
	topSpacer := container.New(&minSizeLayout{min: fyne.NewSize(0, 16)}, layout.NewSpacer())
	bottomSpacer := container.New(&minSizeLayout{min: fyne.NewSize(0, 16)}, layout.NewSpacer())
	boardArea := container.NewVBox(topSpacer, container.New(layout.NewCenterLayout(), grid), bottomSpacer)
	ui.infoLabel = widget.NewLabel("Welcome! Select a difficulty and press Start.")
	ui.infoLabel.Alignment = fyne.TextAlignCenter
	return container.New(layout.NewBorderLayout(topBar, ui.infoLabel, nil, nil),
		topBar, ui.infoLabel, container.New(layout.NewCenterLayout(), boardArea))
}

// setDifficulty applies a difficulty choice. Changing it while a game
// is running abandons that game and starts a fresh one at the new
// difficulty, as the selector is the explicit way to switch mid-game.
func (ui *AppUI) setDifficulty(level Difficulty) {
	wasRunning := ui.session.State() != StateIdle
	ui.session.SetDifficulty(level)
	if wasRunning {
		dialog.ShowInformation("Difficulty Changed",
			fmt.Sprintf("Difficulty set to %s. Starting a new game.", level), ui.window)
		if err := ui.startGame(); err != nil {
			ui.log.WithError(err).Error("start after difficulty change failed")
		}
	}
	ui.updateUI()
}

// attemptToStartGame tries to start a new game, nudging the user if no
// difficulty is selected yet.
func (ui *AppUI) attemptToStartGame() {
	if err := ui.startGame(); err != nil {
		ui.infoLabel.SetText("Please select a difficulty first!")
		return
	}
	ui.updateUI()
}

// restartGame abandons the current game and starts a new one at the
// same difficulty.
func (ui *AppUI) restartGame() {
	ui.session.Reset()
	if err := ui.startGame(); err != nil {
		// The difficulty survives a reset, so this cannot fail here.
		ui.log.WithError(err).Error("restart failed")
	}
	ui.updateUI()
}

// startGame starts a session game and resets the per-game UI flags.
func (ui *AppUI) startGame() error {
	if err := ui.session.Start(); err != nil {
		return err
	}
	ui.gameOverShown = false
	ui.startButton.SetText("Restart")
	PlaySound(SoundGameStart)
	return nil
}

// playerTaps handles a tap on cell idx and schedules the computer's reply.
func (ui *AppUI) playerTaps(idx int) {
	if ui.thinking {
		return // The computer's reply is pending.
	}
	if err := ui.session.PlayerMove(idx); err != nil {
		// Taps on occupied cells, after game over, or before a game
		// starts are no-ops.
		ui.log.WithError(err).WithField("cell", idx).Debug("move rejected")
		return
	}
	PlaySound(SoundMove)
	ui.updateUI()
	if ui.session.State() == StateComputerTurn {
		// Lock the board and let the reply arrive as a distinct event.
		ui.thinking = true
		time.AfterFunc(time.Duration(ui.cfg.ComputerDelayMS)*time.Millisecond, func() {
			ui.handleComputerTurn()
		})
	}
}

// handleComputerTurn runs off the UI goroutine via time.AfterFunc.
func (ui *AppUI) handleComputerTurn() {
	if _, err := ui.session.ComputerMove(); err == nil {
		PlaySound(SoundMove)
	}
	fyne.Do(func() {
		ui.thinking = false
		ui.updateUI()
	})
}

// updateUI redraws every widget from the current session state.
func (ui *AppUI) updateUI() {
	board := ui.session.Snapshot()
	triple, hasTriple := board.WinningTriple()
	gameOver := ui.session.State() == StateGameOver
	for i, cell := range ui.cellWidgets {
		cell.mark = board[i]
		cell.winning = gameOver && hasTriple && (i == triple[0] || i == triple[1] || i == triple[2])
		cell.Refresh()
	}
	tally := ui.session.Tally()
	ui.playerScoreLabel.SetText(fmt.Sprintf("You: %d", tally.PlayerWins))
	ui.computerScoreLabel.SetText(fmt.Sprintf("CPU: %d", tally.ComputerWins))
	ui.drawScoreLabel.SetText(fmt.Sprintf("Draws: %d", tally.Draws))
	switch ui.session.State() {
	case StateIdle:
		ui.startButton.SetText("Start")
		ui.infoLabel.SetText("Select a difficulty and press Start.")
	case StatePlayerTurn:
		ui.infoLabel.SetText("Your turn. You play X.")
	case StateComputerTurn:
		ui.infoLabel.SetText("Computer is thinking...")
	case StateGameOver:
		if !ui.gameOverShown {
			ui.handleGameOver()
		}
	}
}

// handleGameOver sets the final message, plays the matching sound and
// shows the result dialog exactly once per game.
func (ui *AppUI) handleGameOver() {
	var msg string
	var soundToPlay SoundEffect
	switch ui.session.Outcome() {
	case PlayerWin:
		msg = "You Win!"
		soundToPlay = SoundPlayerWins
	case ComputerWin:
		msg = "Computer Wins!"
		soundToPlay = SoundComputerWins
	default:
		msg = "It's a Draw!"
		soundToPlay = SoundDraw
	}
	PlaySound(soundToPlay)
	ui.infoLabel.SetText(msg + " Press Restart to play again.")
	dialog.ShowInformation("Game Over", msg, ui.window)
	ui.gameOverShown = true
}
