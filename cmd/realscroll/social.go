package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/swan07222/RealScroll-app/pkg/sync"
)

func (a *app) commentsCmd() *cobra.Command {
	var add, parent string

	cmd := &cobra.Command{
		Use:   "comments <post-id>",
		Short: "Show or add comments on a post",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.restore(cmd); err != nil {
				return err
			}
			thread := sync.NewThread(a.gw.Comments, args[0], a.cfg.DefaultPageSize)
			if err := thread.Fetch(cmd.Context(), 1); err != nil {
				return err
			}
			if add != "" {
				created, err := thread.Add(cmd.Context(), add, parent)
				if err != nil {
					return err
				}
				fmt.Printf("commented %s\n", created.ID)
			}
			for _, c := range thread.Items() {
				fmt.Printf("[%s] @%s: %s (likes %d)\n", c.ID, c.User.Username, c.Content, c.LikesCount)
				for _, r := range c.Replies {
					fmt.Printf("    [%s] @%s: %s\n", r.ID, r.User.Username, r.Content)
				}
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&add, "add", "", "add a comment with this text")
	cmd.Flags().StringVar(&parent, "parent", "", "reply to this comment id")
	return cmd
}

func (a *app) notificationsCmd() *cobra.Command {
	var markRead string
	var markAll bool

	cmd := &cobra.Command{
		Use:   "notifications",
		Short: "Show notifications",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.restore(cmd); err != nil {
				return err
			}
			inbox := sync.NewInbox(a.gw.Notifications, a.cfg.DefaultPageSize)
			if err := inbox.Fetch(cmd.Context(), 1); err != nil {
				return err
			}
			if err := inbox.RefreshUnread(cmd.Context()); err != nil {
				return err
			}

			if markAll {
				if err := inbox.MarkAllRead(cmd.Context()); err != nil {
					return err
				}
			} else if markRead != "" {
				if err := inbox.MarkRead(cmd.Context(), markRead); err != nil {
					return err
				}
			}

			fmt.Printf("unread: %d\n", inbox.UnreadCount())
			for _, n := range inbox.Items() {
				read := " "
				if !n.IsRead {
					read = "*"
				}
				fmt.Printf("[%s] %s %-8s %s\n", n.ID, read, n.Type, n.Message)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&markRead, "mark-read", "", "mark this notification read")
	cmd.Flags().BoolVar(&markAll, "mark-all", false, "mark all notifications read")
	return cmd
}

func (a *app) searchCmd() *cobra.Command {
	var users bool

	cmd := &cobra.Command{
		Use:   "search <query>",
		Short: "Search posts or users",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.restore(cmd); err != nil {
				return err
			}
			if users {
				s := sync.NewUserSearch(a.gw.Users, a.cfg.DefaultPageSize)
				if err := s.Run(cmd.Context(), args[0]); err != nil {
					return err
				}
				for _, u := range s.Results() {
					fmt.Printf("[%s] @%s (%s)\n", u.ID, u.Username, u.DisplayName)
				}
				return nil
			}
			s := sync.NewPostSearch(a.gw.Posts, a.cfg.DefaultPageSize)
			if err := s.Run(cmd.Context(), args[0]); err != nil {
				return err
			}
			for _, p := range s.Results() {
				printPost(p)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&users, "users", false, "search users instead of posts")
	return cmd
}

func (a *app) followCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "follow <user-id>",
		Short: "Toggle following a user",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.restore(cmd); err != nil {
				return err
			}
			profile := sync.NewProfile(a.gw.Users, args[0])
			if err := profile.Load(cmd.Context()); err != nil {
				return err
			}
			if err := profile.ToggleFollow(cmd.Context()); err != nil {
				return err
			}
			p := profile.Profile()
			state := "not following"
			if p.IsFollowing {
				state = "following"
			}
			fmt.Printf("@%s: %s (followers %d)\n", p.Username, state, p.FollowersCount)
			return nil
		},
	}
}
