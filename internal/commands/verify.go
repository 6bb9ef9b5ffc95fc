package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var verifyCmd = &cobra.Command{
	Use:   "verify",
	Short: "Run integrity and duplicate checks against the catalog",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		integrity, err := manager.VerifyDatabaseIntegrity()
		if err != nil {
			return err
		}
		duplicates, err := manager.GetDuplicateEntries()
		if err != nil {
			return err
		}

		clean := integrity.Empty() &&
			len(duplicates.DuplicateNumbers) == 0 &&
			len(duplicates.DuplicateNames) == 0 &&
			len(duplicates.MismatchedElements) == 0

		if clean {
			okColor.Println("no issues found")
			return nil
		}

		for _, issue := range integrity.MissingDetails {
			badColor.Printf("%s %s: missing %s row\n", issue.Card.CardNumber, issue.Card.Name, issue.Missing)
		}
		for _, issue := range integrity.InvalidElements {
			if issue.Card != nil {
				badColor.Printf("%s %s: %s\n", issue.Card.CardNumber, issue.Card.Name, issue.Problem)
			} else {
				badColor.Printf("%s: %s\n", issue.Element, issue.Problem)
			}
		}
		for _, issue := range integrity.CollectionIssues {
			badColor.Printf("status %s: %s\n", issue.StatusID, strings.Join(issue.Issues, ", "))
		}
		for _, issue := range integrity.ConstraintViolations {
			badColor.Printf("%s %s: %s\n", issue.Card.CardNumber, issue.Card.Name, strings.Join(issue.Issues, ", "))
		}

		for _, dupe := range duplicates.DuplicateNumbers {
			warnColor.Printf("card number %s appears %d times\n", dupe.CardNumber, dupe.Count)
		}
		for _, dupe := range duplicates.DuplicateNames {
			warnColor.Printf("character %s has %d variants\n", dupe.Name, dupe.Count)
		}
		for _, mismatch := range duplicates.MismatchedElements {
			elements := make([]string, len(mismatch.Elements))
			for i, element := range mismatch.Elements {
				elements[i] = string(element)
			}
			warnColor.Printf("character %s printed with conflicting elements: %s\n",
				mismatch.Name, strings.Join(elements, ", "))
		}

		fmt.Println()
		return fmt.Errorf("found issues; review the output above")
	},
}
