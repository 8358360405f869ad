package tasks

import (
	"context"
	"flag"
	"fmt"

	"github.com/mitchellh/cli"

	"github.com/steamship-core/steamship-go/internal/cmd/base"
	"github.com/steamship-core/steamship-go/pkg/task"
)

type CommentCommand struct {
	*base.Command
}

func (c *CommentCommand) Synopsis() string {
	return "Manage comments attached to a task"
}

func (c *CommentCommand) Help() string {
	return `Usage: steamship task comment <subcommand> [options] [args]

  This command groups subcommands for creating, listing and deleting the
  comments that correlate a task with records in external systems.`
}

func (c *CommentCommand) Run(args []string) int {
	return cli.RunResultHelp
}

type CommentAddCommand struct {
	*base.Command

	flagExternalID    string
	flagExternalType  string
	flagExternalGroup string
	flagMetadata      string
	flagUpsert        bool
}

func (c *CommentAddCommand) Synopsis() string {
	return "Attach a comment to a task"
}

func (c *CommentAddCommand) Help() string {
	return `Usage: steamship task comment add [options] <task-id>

  Attaches a comment to the task. Metadata given as JSON is stored as that
  value; anything else is stored as a plain string.` + c.Flags().Help()
}

func (c *CommentAddCommand) Flags() *base.FlagSet {
	f := base.NewFlagSet(flag.NewFlagSet("task comment add", flag.ContinueOnError))
	c.ClientFlags(f)

	f.StringVar(&c.flagExternalID, "external-id", "", "Id of the matching record in an external system.")
	f.StringVar(&c.flagExternalType, "external-type", "", "Type of the matching external record.")
	f.StringVar(&c.flagExternalGroup, "external-group", "", "Group of the matching external record.")
	f.StringVar(&c.flagMetadata, "metadata", "", "Comment metadata, JSON or plain text.")
	f.BoolVar(&c.flagUpsert, "upsert", true, "Update an existing comment with the same external fields.")

	return f
}

func (c *CommentAddCommand) Run(args []string) int {
	ui := c.UI

	flags := c.Flags()
	if err := flags.Parse(args); err != nil {
		ui.Error(fmt.Sprintf("error parsing flags: %v", err))
		return 1
	}
	if flags.NArg() != 1 {
		ui.Error("expected exactly one task id")
		return 1
	}

	cl, err := c.Client()
	if err != nil {
		ui.Error(fmt.Sprintf("error creating client: %v", err))
		return 1
	}

	upsert := c.flagUpsert
	t := task.NewTask(flags.Arg(0), c.Routing())
	resp, err := t.AddComment(context.Background(), cl, task.CommentInput{
		ExternalID:    c.flagExternalID,
		ExternalType:  c.flagExternalType,
		ExternalGroup: c.flagExternalGroup,
		Metadata:      task.DecodeMetadata(c.flagMetadata),
		Upsert:        &upsert,
	})
	if err != nil {
		ui.Error(fmt.Sprintf("error adding comment: %v", err))
		return 1
	}
	if resp.Error != nil {
		ui.Error(resp.Error.Error())
		return 1
	}
	if resp.Data != nil {
		printComment(ui, *resp.Data)
	}
	return 0
}

type CommentListCommand struct {
	*base.Command

	flagExternalID    string
	flagExternalType  string
	flagExternalGroup string
}

func (c *CommentListCommand) Synopsis() string {
	return "List the comments attached to a task"
}

func (c *CommentListCommand) Help() string {
	return `Usage: steamship task comment list [options] <task-id>` + c.Flags().Help()
}

func (c *CommentListCommand) Flags() *base.FlagSet {
	f := base.NewFlagSet(flag.NewFlagSet("task comment list", flag.ContinueOnError))
	c.ClientFlags(f)

	f.StringVar(&c.flagExternalID, "external-id", "", "Only list comments with this external id.")
	f.StringVar(&c.flagExternalType, "external-type", "", "Only list comments with this external type.")
	f.StringVar(&c.flagExternalGroup, "external-group", "", "Only list comments in this external group.")

	return f
}

func (c *CommentListCommand) Run(args []string) int {
	ui := c.UI

	flags := c.Flags()
	if err := flags.Parse(args); err != nil {
		ui.Error(fmt.Sprintf("error parsing flags: %v", err))
		return 1
	}
	if flags.NArg() != 1 {
		ui.Error("expected exactly one task id")
		return 1
	}

	cl, err := c.Client()
	if err != nil {
		ui.Error(fmt.Sprintf("error creating client: %v", err))
		return 1
	}

	t := task.NewTask(flags.Arg(0), c.Routing())
	resp, err := t.ListComments(context.Background(), cl, task.CommentFilter{
		ExternalID:    c.flagExternalID,
		ExternalType:  c.flagExternalType,
		ExternalGroup: c.flagExternalGroup,
	})
	if err != nil {
		ui.Error(fmt.Sprintf("error listing comments: %v", err))
		return 1
	}
	if resp.Error != nil {
		ui.Error(resp.Error.Error())
		return 1
	}
	if resp.Data == nil || len(resp.Data.Comments) == 0 {
		ui.Info("No comments found")
		return 0
	}
	for i, comment := range resp.Data.Comments {
		if i > 0 {
			ui.Output("")
		}
		printComment(ui, comment)
	}
	return 0
}

type CommentDeleteCommand struct {
	*base.Command
}

func (c *CommentDeleteCommand) Synopsis() string {
	return "Delete a comment from a task"
}

func (c *CommentDeleteCommand) Help() string {
	return `Usage: steamship task comment delete [options] <task-id> <comment-id>` + c.Flags().Help()
}

func (c *CommentDeleteCommand) Flags() *base.FlagSet {
	f := base.NewFlagSet(flag.NewFlagSet("task comment delete", flag.ContinueOnError))
	c.ClientFlags(f)
	return f
}

func (c *CommentDeleteCommand) Run(args []string) int {
	ui := c.UI

	flags := c.Flags()
	if err := flags.Parse(args); err != nil {
		ui.Error(fmt.Sprintf("error parsing flags: %v", err))
		return 1
	}
	if flags.NArg() != 2 {
		ui.Error("expected a task id and a comment id")
		return 1
	}

	cl, err := c.Client()
	if err != nil {
		ui.Error(fmt.Sprintf("error creating client: %v", err))
		return 1
	}

	t := task.NewTask(flags.Arg(0), c.Routing())
	resp, err := t.DeleteComment(context.Background(), cl, flags.Arg(1))
	if err != nil {
		ui.Error(fmt.Sprintf("error deleting comment: %v", err))
		return 1
	}
	if resp.Error != nil {
		ui.Error(resp.Error.Error())
		return 1
	}
	ui.Output(fmt.Sprintf("Deleted comment %s", flags.Arg(1)))
	return 0
}

func printComment(ui cli.Ui, comment task.TaskComment) {
	ui.Output(fmt.Sprintf("Comment ID:     %s", comment.TaskCommentID))
	if comment.ExternalID != "" {
		ui.Output(fmt.Sprintf("External ID:    %s", comment.ExternalID))
	}
	if comment.ExternalType != "" {
		ui.Output(fmt.Sprintf("External type:  %s", comment.ExternalType))
	}
	if comment.ExternalGroup != "" {
		ui.Output(fmt.Sprintf("External group: %s", comment.ExternalGroup))
	}
	switch metadata := comment.Metadata.(type) {
	case nil:
	case string:
		ui.Output(fmt.Sprintf("Metadata:       %s", metadata))
	default:
		ui.Output(fmt.Sprintf("Metadata:       %s", task.EncodeMetadata(metadata)))
	}
	if comment.CreatedAt != "" {
		ui.Output(fmt.Sprintf("Created:        %s", comment.CreatedAt))
	}
}
