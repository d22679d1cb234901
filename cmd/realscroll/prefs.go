package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/swan07222/RealScroll-app/pkg/store"
)

func (a *app) prefsCmd() *cobra.Command {
	var theme, language string

	cmd := &cobra.Command{
		Use:   "prefs",
		Short: "Show or set stored preferences",
		RunE: func(cmd *cobra.Command, args []string) error {
			if theme != "" {
				if err := a.st.Set(store.KeyTheme, theme); err != nil {
					return err
				}
			}
			if language != "" {
				if err := a.st.Set(store.KeyLanguage, language); err != nil {
					return err
				}
			}

			fmt.Printf("theme: %s\n", prefOr(a.st, store.KeyTheme, "system"))
			fmt.Printf("language: %s\n", prefOr(a.st, store.KeyLanguage, "en"))
			fmt.Printf("onboarding complete: %s\n", prefOr(a.st, store.KeyOnboardingComplete, "false"))
			return nil
		},
	}

	cmd.Flags().StringVar(&theme, "theme", "", "light, dark or system")
	cmd.Flags().StringVar(&language, "language", "", "interface language code")
	return cmd
}

func prefOr(st store.Store, key, fallback string) string {
	if v, ok := st.Get(key); ok && v != "" {
		return v
	}
	return fallback
}
