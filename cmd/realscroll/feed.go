package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/swan07222/RealScroll-app/pkg/models"
	"github.com/swan07222/RealScroll-app/pkg/sync"
)

func printPost(p models.Post) {
	liked := " "
	if p.IsLiked {
		liked = "*"
	}
	fmt.Printf("[%s] %s @%s: %s (likes %d, comments %d)\n",
		p.ID, liked, p.User.Username, p.Content, p.LikesCount, p.CommentsCount)
}

func (a *app) feedCmd() *cobra.Command {
	var pages int

	cmd := &cobra.Command{
		Use:   "feed",
		Short: "Show the home feed",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.restore(cmd); err != nil {
				return err
			}
			feed := sync.NewFeed(a.gw.Posts, a.cfg.DefaultPageSize)
			if err := feed.Fetch(cmd.Context(), 1); err != nil {
				return err
			}
			for p := 1; p < pages && feed.HasMore(); p++ {
				if err := feed.LoadMore(cmd.Context()); err != nil {
					return err
				}
			}
			for _, post := range feed.Items() {
				printPost(post)
			}
			if feed.HasMore() {
				fmt.Println("(more available, use --pages)")
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&pages, "pages", 1, "number of pages to load")
	return cmd
}

func (a *app) likeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "like <post-id>",
		Short: "Toggle a like on a post",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.restore(cmd); err != nil {
				return err
			}
			post, err := a.gw.Posts.Like(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			printPost(post)
			return nil
		},
	}
}

func (a *app) postCmd() *cobra.Command {
	var content, mediaType, mediaPath, location, tags string

	cmd := &cobra.Command{
		Use:   "post",
		Short: "Publish a post",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.restore(cmd); err != nil {
				return err
			}
			input := models.CreatePostInput{
				Content:   content,
				MediaType: mediaType,
				MediaPath: mediaPath,
				Location:  location,
			}
			if tags != "" {
				input.Tags = strings.Split(tags, ",")
			}
			feed := sync.NewFeed(a.gw.Posts, a.cfg.DefaultPageSize)
			created, err := feed.Create(cmd.Context(), input)
			if err != nil {
				return err
			}
			fmt.Printf("posted %s\n", created.ID)
			return nil
		},
	}

	cmd.Flags().StringVar(&content, "content", "", "post text")
	cmd.Flags().StringVar(&mediaType, "media-type", "text", "image, video or text")
	cmd.Flags().StringVar(&mediaPath, "media", "", "path to a media file to upload")
	cmd.Flags().StringVar(&location, "location", "", "location label")
	cmd.Flags().StringVar(&tags, "tags", "", "comma-separated tags")
	return cmd
}
