package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/swan07222/RealScroll-app/pkg/session"
	"github.com/swan07222/RealScroll-app/pkg/store"
)

// finishOnboarding records that the user has completed a first login;
// the flag survives logout so onboarding is not replayed.
func (a *app) finishOnboarding() {
	_ = a.st.Set(store.KeyOnboardingComplete, "true")
}

func (a *app) loginCmd() *cobra.Command {
	var email, password, phone, otp string

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Log in with email/password or phone/OTP",
		RunE: func(cmd *cobra.Command, args []string) error {
			if phone != "" {
				if otp == "" {
					if err := a.sess.SendOTP(cmd.Context(), phone); err != nil {
						return err
					}
					fmt.Println("OTP sent, re-run with --otp")
					return nil
				}
				user, err := a.sess.VerifyOTP(cmd.Context(), phone, otp)
				if err != nil {
					return err
				}
				a.finishOnboarding()
				fmt.Printf("logged in as @%s\n", user.Username)
				return nil
			}

			user, err := a.sess.Login(cmd.Context(), email, password)
			if err != nil {
				return err
			}
			a.finishOnboarding()
			fmt.Printf("logged in as @%s\n", user.Username)
			return nil
		},
	}

	cmd.Flags().StringVar(&email, "email", "", "account email")
	cmd.Flags().StringVar(&password, "password", "", "account password")
	cmd.Flags().StringVar(&phone, "phone", "", "phone number (E.164)")
	cmd.Flags().StringVar(&otp, "otp", "", "one-time code")
	return cmd
}

func (a *app) logoutCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Log out and clear stored credentials",
		RunE: func(cmd *cobra.Command, args []string) error {
			_ = a.sess.Restore(cmd.Context())
			a.sess.Logout(cmd.Context())
			fmt.Println("logged out")
			return nil
		},
	}
}

func (a *app) whoamiCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Show the logged-in user",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.sess.Restore(cmd.Context()); err != nil {
				return err
			}
			if a.sess.State() != session.StateAuthenticated {
				fmt.Println("not logged in")
				return nil
			}
			u := a.sess.User()
			fmt.Printf("@%s (%s)\n", u.Username, u.DisplayName)
			fmt.Printf("followers %d, following %d, posts %d\n",
				u.FollowersCount, u.FollowingCount, u.PostsCount)
			return nil
		},
	}
}
