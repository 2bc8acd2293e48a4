package cli

import (
	"github.com/spf13/cobra"

	"github.com/astralfront/supremacy/internal/api/request"
)

func newGameCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "game",
		Short: "Game commands",
	}

	cmd.AddCommand(newGameCreateCmd())
	cmd.AddCommand(newGameViewCmd())
	cmd.AddCommand(newGameListCmd())

	return cmd
}

func newGameCreateCmd() *cobra.Command {
	var faction, difficulty, size, winCondition, mode string

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Start a new game",
		RunE: func(cmd *cobra.Command, args []string) error {
			gameID, err := apiClient.CreateGame(cmd.Context(), request.CreateGameRequest{
				Faction:      faction,
				Difficulty:   difficulty,
				GalaxySize:   size,
				WinCondition: winCondition,
				Mode:         mode,
			})
			if err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(CreateGameResult{GameID: gameID})
			return nil
		},
	}

	cmd.Flags().StringVar(&faction, "faction", "Empire", "Faction to play: Empire, Rebellion")
	cmd.Flags().StringVar(&difficulty, "difficulty", "Medium", "Difficulty: Easy, Medium, Hard")
	cmd.Flags().StringVar(&size, "size", "Small", "Galaxy size: Small, Medium, Large")
	cmd.Flags().StringVar(&winCondition, "win-condition", "Standard", "Win condition: Standard, Headquarters")
	cmd.Flags().StringVar(&mode, "mode", "Standard", "Game mode")

	return cmd
}

func newGameViewCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "view <game-id>",
		Short: "Show your fogged view of a game",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			view, err := apiClient.Game(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(GameViewResult{GameID: args[0], View: view})
			return nil
		},
	}
}

func newGameListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List your in-progress games",
		RunE: func(cmd *cobra.Command, args []string) error {
			list, err := apiClient.Games(cmd.Context())
			if err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(GameListResult{List: *list})
			return nil
		},
	}
}
