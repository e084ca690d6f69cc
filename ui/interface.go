package ui

import (
	"fmt"

	"github.com/gizak/termui/v3"
	"github.com/gizak/termui/v3/widgets"

	"gitlab.com/aoterocom/AOCrashLab/models"
	"gitlab.com/aoterocom/AOCrashLab/models/analytics"
)

const trajectoriesShown = 8

// UserInterface renders one finished run as a terminal dashboard: summary
// panels, a bankroll trajectory plot and a final-bankroll histogram
type UserInterface struct {
	cfg      models.SimulationConfig
	summary  analytics.SummaryStatistics
	sessions []analytics.SessionResult
}

func NewUserInterface(cfg models.SimulationConfig, summary analytics.SummaryStatistics, sessions []analytics.SessionResult) *UserInterface {
	return &UserInterface{
		cfg:      cfg,
		summary:  summary,
		sessions: sessions,
	}
}

// Run draws the dashboard and blocks until q or Ctrl-C
func (ui *UserInterface) Run() error {
	if err := termui.Init(); err != nil {
		return fmt.Errorf("failed to initialize termui: %w", err)
	}
	defer termui.Close()

	ui.render()

	for e := range termui.PollEvents() {
		switch e.ID {
		case "q", "<C-c>":
			return nil
		case "<Resize>":
			termui.Clear()
			ui.render()
		}
	}
	return nil
}

func (ui *UserInterface) render() {

	configParagraph := widgets.NewParagraph()
	configParagraph.BorderStyle.Fg = termui.ColorYellow
	configParagraph.TitleStyle.Fg = termui.ColorYellow
	configParagraph.Block.Title = "Run " + ui.cfg.Strategy
	configParagraph.Text = fmt.Sprintf("House Edge: %.2f%%\n", ui.cfg.HouseEdge*100)
	configParagraph.Text += fmt.Sprintf("Target: x%.2f\n", ui.cfg.TargetMultiplier)
	configParagraph.Text += fmt.Sprintf("Bankroll: %.2f\n", ui.cfg.InitialBankroll)
	configParagraph.Text += fmt.Sprintf("Base Bet: %.2f\n", ui.cfg.BaseBet)
	configParagraph.Text += fmt.Sprintf("Sessions: %d\n", ui.cfg.Sessions)
	configParagraph.Text += fmt.Sprintf("Rounds: %d\n", ui.cfg.Rounds)
	configParagraph.SetRect(0, 0, 34, 9)

	summaryParagraph := widgets.NewParagraph()
	summaryParagraph.Block.Title = "Summary"
	summaryParagraph.Text = fmt.Sprintf("[Ruin Probability: %.2f%%](fg:red)\n", ui.summary.RuinProbability*100)
	summaryParagraph.Text += fmt.Sprintf("Mean Final Bankroll: %.2f\n", ui.summary.MeanFinalBankroll)
	summaryParagraph.Text += fmt.Sprintf("Median Final Bankroll: %.2f\n", ui.summary.MedianFinalBankroll)
	summaryParagraph.Text += fmt.Sprintf("Std Deviation: %.2f\n", ui.summary.BankrollStdDev)
	summaryParagraph.Text += fmt.Sprintf("Win Rate: %.2f%%\n", ui.summary.WinRate*100)
	summaryParagraph.Text += fmt.Sprintf("Mean ROI: %.2f%%\n", ui.summary.MeanROI)
	summaryParagraph.SetRect(34, 0, 68, 9)

	theoryParagraph := widgets.NewParagraph()
	theoryParagraph.Block.Title = "Closed Form"
	theoryParagraph.Text = fmt.Sprintf("P(success): %.4f\n", ui.summary.ProbabilityOfSuccess)
	theoryParagraph.Text += fmt.Sprintf("EV per round: %.4f\n", ui.summary.ExpectedValuePerRound)
	theoryParagraph.Text += fmt.Sprintf("Simulated per round: %.4f\n", ui.summary.MeanProfitPerRound)
	theoryParagraph.Text += fmt.Sprintf("Kelly fraction: %.4f\n", ui.summary.KellyFraction)
	theoryParagraph.SetRect(68, 0, 100, 9)

	trajectoryPlot := widgets.NewPlot()
	trajectoryPlot.Block.Title = fmt.Sprintf("Bankroll Trajectories (first %d sessions)", trajectoriesShown)
	trajectoryPlot.Data = ui.trajectories()
	trajectoryPlot.SetRect(0, 9, 100, 26)

	histogram := widgets.NewBarChart()
	histogram.Block.Title = "Final Bankrolls"
	histogram.Data, histogram.Labels = ui.histogram(10)
	histogram.BarWidth = 8
	histogram.SetRect(0, 26, 100, 36)

	termui.Render(configParagraph, summaryParagraph, theoryParagraph, trajectoryPlot, histogram)
}

// trajectories picks the first few sessions with at least two rounds, the
// minimum the plot widget can draw
func (ui *UserInterface) trajectories() [][]float64 {
	var data [][]float64
	for _, session := range ui.sessions {
		trajectory := session.Trajectory()
		if len(trajectory) < 2 {
			continue
		}
		data = append(data, trajectory)
		if len(data) == trajectoriesShown {
			break
		}
	}
	if data == nil {
		data = [][]float64{{0, 0}}
	}
	return data
}

// histogram buckets the final bankrolls into equal-width bins
func (ui *UserInterface) histogram(bins int) ([]float64, []string) {
	min := ui.sessions[0].FinalBankroll
	max := min
	for _, session := range ui.sessions {
		if session.FinalBankroll < min {
			min = session.FinalBankroll
		}
		if session.FinalBankroll > max {
			max = session.FinalBankroll
		}
	}

	width := (max - min) / float64(bins)
	if width == 0 {
		return []float64{float64(len(ui.sessions))}, []string{fmt.Sprintf("%.0f", min)}
	}

	data := make([]float64, bins)
	labels := make([]string, bins)
	for _, session := range ui.sessions {
		bin := int((session.FinalBankroll - min) / width)
		if bin == bins {
			bin--
		}
		data[bin]++
	}
	for bin := 0; bin < bins; bin++ {
		labels[bin] = fmt.Sprintf("%.0f", min+width*float64(bin))
	}
	return data, labels
}
