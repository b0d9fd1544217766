// SPDX-License-Identifier: MPL-2.0

package issue

import (
	"github.com/charmbracelet/glamour"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

type Id int

const (
	ConfFileNotFoundId Id = iota + 1
	ConfNotAFileId
	ConfParseErrorId
	InvalidParamsId
	CredentialsMissingId
	SigningFailedId
	UploadFailedId
)

type MarkdownMsg string

type HttpLink string

type Renderer interface {
	Render(in string, stylePath string) (string, error)
}

type Issue struct {
	id       Id          // ID used to lookup the issue
	mdMsg    MarkdownMsg // Markdown text that will be rendered
	docLinks []HttpLink  // links to our own docs about the issue
	extLinks []HttpLink  // external links that might be useful for the user
}

func (i *Issue) Id() Id {
	return i.id
}

func (i *Issue) MarkdownMsg() MarkdownMsg {
	return i.mdMsg
}

func (i *Issue) DocLinks() []HttpLink {
	return slices.Clone(i.docLinks)
}

func (i *Issue) ExtLinks() []HttpLink {
	return slices.Clone(i.extLinks)
}

func (i *Issue) Render(stylePath string) (string, error) {
	extraMd := ""
	if len(i.docLinks) > 0 || len(i.extLinks) > 0 {
		extraMd += "\n\n"
		extraMd += "## See also: "
		for _, link := range i.docLinks {
			extraMd += "- [" + string(link) + "]"
		}
		for _, link := range i.extLinks {
			extraMd += "- [" + string(link) + "]"
		}
	}
	return render(string(i.mdMsg)+extraMd, stylePath)
}

var (
	render = glamour.Render

	confFileNotFoundIssue = &Issue{
		id: ConfFileNotFoundId,
		mdMsg: `
# Publish configuration file not found!

The file passed via --conf does not exist.

## Things you can try:
- Check the path for typos
- Drop --conf to let discovery probe the default locations:
  1. publish.json
  2. project/publish.json`,
	}

	confNotAFileIssue = &Issue{
		id: ConfNotAFileId,
		mdMsg: `
# Publish configuration path is not a file!

The path passed via --conf exists but is not a regular file
(it is probably a directory).

## Things you can try:
- Point --conf at the publish.json file itself, not its directory:
~~~
$ cs publish --conf project/publish.json
~~~`,
	}

	confParseErrorIssue = &Issue{
		id: ConfParseErrorId,
		mdMsg: `
# Failed to parse the publish configuration!

Your publish.json contains syntax errors or values that do not match
the expected schema.

## Known fields:
- organization (string)
- version (string)
- homePage (string)
- licenses (list of {name, url})
- developers (list of {id, name, url})

## Things you can try:
- Check the error message above for the specific field
- Validate the file is well-formed JSON`,
	}

	invalidParamsIssue = &Issue{
		id: InvalidParamsId,
		mdMsg: `
# Invalid publish parameters!

One or more of the supplied options did not validate. All problems are
reported together, so fix the whole list and retry.

## Things you can try:
- Read each error line above; they are independent
- See the available options:
~~~
$ cs publish --help
~~~`,
	}

	credentialsMissingIssue = &Issue{
		id: CredentialsMissingId,
		mdMsg: `
# Repository credentials missing!

The target repository requires authentication but no credentials
were configured.

## Things you can try:
- Pass credentials inline:
~~~
$ cs publish --auth user:password
~~~

- Or read them from the environment:
~~~
$ cs publish --auth env:PUBLISH_CREDENTIALS
~~~`,
	}

	signingFailedIssue = &Issue{
		id: SigningFailedId,
		mdMsg: `
# Artifact signing failed!

gpg returned an error while producing a detached signature.

## Things you can try:
- Check that gpg is installed and on your PATH
- Check that the key passed via --gpg-key exists:
~~~
$ gpg --list-secret-keys
~~~

- Drop --gpg-key to sign with your default key`,
	}

	uploadFailedIssue = &Issue{
		id: UploadFailedId,
		mdMsg: `
# Artifact upload failed!

The repository rejected the upload or could not be reached.

## Common causes:
- Wrong repository URL
- Missing or wrong credentials (HTTP 401/403)
- The version was already released (HTTP 409)

## Things you can try:
- Re-run with --dummy to inspect what would be uploaded
- Re-run with -v to see per-file upload diagnostics`,
	}

	issues = map[Id]*Issue{
		confFileNotFoundIssue.Id():   confFileNotFoundIssue,
		confNotAFileIssue.Id():       confNotAFileIssue,
		confParseErrorIssue.Id():     confParseErrorIssue,
		invalidParamsIssue.Id():      invalidParamsIssue,
		credentialsMissingIssue.Id(): credentialsMissingIssue,
		signingFailedIssue.Id():      signingFailedIssue,
		uploadFailedIssue.Id():       uploadFailedIssue,
	}
)

func Values() []*Issue {
	return maps.Values(issues)
}

func Get(id Id) *Issue {
	return issues[id]
}
