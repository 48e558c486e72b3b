package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"strconv"
	"strings"
	"syscall"

	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	"golang.org/x/term"

	"github.com/seekhobharat/client/apps"
	"github.com/seekhobharat/client/core"
	"github.com/seekhobharat/client/core/assignment"
	"github.com/seekhobharat/client/core/cart"
	"github.com/seekhobharat/client/core/course"
	"github.com/seekhobharat/client/core/dashboard"
	"github.com/seekhobharat/client/core/flashcard"
	"github.com/seekhobharat/client/core/guard"
	"github.com/seekhobharat/client/core/nav"
	"github.com/seekhobharat/client/core/session"
	"github.com/seekhobharat/client/core/student"
)

var (
	readPasswordFunc = term.ReadPassword // mockable

	errHelp       = errors.New("help provided")
	errRedirected = errors.New("redirected to login; run `shell login` first")
)

type commandLine struct {
	conf        *core.Config
	sessions    *session.Store
	guard       *guard.Guard
	courses     *course.Service
	cart        *cart.Service
	students    *student.Service
	assignments *assignment.Service
	flashcards  *flashcard.Service
	dashboards  *dashboard.Service
	validate    *validator.Validate
	translator  ut.Translator
}

func (cli *commandLine) printUsage() {
	fmt.Println("Usage:")
	fmt.Println("  login -email EMAIL                         - sign in (password prompted)")
	fmt.Println("  register -first F -last L -email E -type R - create an account")
	fmt.Println("  logout                                     - sign out")
	fmt.Println("  whoami                                     - show the current session")
	fmt.Println("  courses [-query Q] [-category C] [-level L] - browse/search the catalog")
	fmt.Println("  course -id ID                              - show a course in full")
	fmt.Println("  cart                                       - list the cart")
	fmt.Println("  cart-add -id ID | cart-remove -id ID       - edit the cart")
	fmt.Println("  checkout -name N -number NUM -expiry MM/YY -cvv CVV")
	fmt.Println("  quiz -course ID -topic ID -answers q1=0,q2=2")
	fmt.Println("  streak | dashboard | metrics | overview")
	fmt.Println("  assignments | assignment-submit -id ID -content TEXT")
	fmt.Println("  flashcards -course ID")
	fmt.Println("  contact -name N -email E -message TEXT")
}

// guardTo runs the route guard exactly as a navigation would; a redirect
// decision aborts the command.
func (cli *commandLine) guardTo(route string) error {
	if decision := cli.guard.AuthorizeRoute(route); !decision.Allowed {
		fmt.Printf("→ %s\n", decision.RedirectTo)
		return errRedirected
	}
	return nil
}

func (cli *commandLine) run(args []string) error {
	if len(args) < 2 {
		cli.printUsage()
		return errHelp
	}
	ctx := context.Background()

	switch args[1] {
	case "login":
		return cli.loginCmd(ctx, args[2:])
	case "register":
		return cli.registerCmd(ctx, args[2:])
	case "logout":
		cli.sessions.Logout()
		fmt.Println("logged out")
		return nil
	case "whoami":
		return cli.whoamiCmd()
	case "courses":
		return cli.coursesCmd(ctx, args[2:])
	case "course":
		return cli.courseCmd(ctx, args[2:])
	case "cart":
		return cli.cartCmd(ctx)
	case "cart-add", "cart-remove":
		return cli.cartEditCmd(ctx, args[1], args[2:])
	case "checkout":
		return cli.checkoutCmd(ctx, args[2:])
	case "quiz":
		return cli.quizCmd(ctx, args[2:])
	case "streak":
		return cli.streakCmd(ctx)
	case "dashboard":
		return cli.dashboardCmd(ctx)
	case "metrics":
		return cli.metricsCmd(ctx)
	case "overview":
		return cli.overviewCmd(ctx)
	case "assignments":
		return cli.assignmentsCmd(ctx)
	case "assignment-submit":
		return cli.assignmentSubmitCmd(ctx, args[2:])
	case "flashcards":
		return cli.flashcardsCmd(ctx, args[2:])
	case "contact":
		return cli.contactCmd(args[2:])
	default:
		cli.printUsage()
		return errHelp
	}
}

func (cli *commandLine) loginCmd(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("login", flag.ExitOnError)
	email := fs.String("email", "", "The account email. The password will be prompted next.")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *email == "" {
		fs.Usage()
		return errHelp
	}

	// once signed in, the login view is unreachable
	if decision := cli.guard.RedirectAuthed(nav.RouteLogin); !decision.Allowed {
		fmt.Printf("already signed in → %s\n", decision.RedirectTo)
		return nil
	}

	fmt.Print("Enter password:")
	pwd, err := readPasswordFunc(syscall.Stdin)
	fmt.Println()
	if err != nil {
		return err
	}

	sess, err := cli.sessions.Login(ctx, session.Credentials{Email: *email, Password: string(pwd)})
	if err != nil {
		return err
	}
	fmt.Printf("welcome back → %s\n", nav.Home(sess.Role))
	return nil
}

func (cli *commandLine) registerCmd(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("register", flag.ExitOnError)
	first := fs.String("first", "", "First name.")
	last := fs.String("last", "", "Last name.")
	email := fs.String("email", "", "Email address.")
	acctType := fs.String("type", string(session.RoleStudent), "Account type: Student or Teacher.")
	if err := fs.Parse(args); err != nil {
		return err
	}

	fmt.Print("Enter password:")
	pwd, err := readPasswordFunc(syscall.Stdin)
	fmt.Println()
	if err != nil {
		return err
	}
	fmt.Print("Confirm password:")
	confirm, err := readPasswordFunc(syscall.Stdin)
	fmt.Println()
	if err != nil {
		return err
	}

	acct := session.NewAccount{
		FirstName:       *first,
		LastName:        *last,
		Email:           *email,
		Password:        string(pwd),
		PasswordConfirm: string(confirm),
		AccountType:     session.Role(*acctType),
	}
	if err := cli.sessions.Register(ctx, acct); err != nil {
		return err
	}
	fmt.Println("account created; sign in with `shell login`")
	return nil
}

func (cli *commandLine) whoamiCmd() error {
	sess := cli.sessions.Current()
	if !sess.Present() {
		fmt.Println("not signed in")
		return nil
	}
	claims, err := session.DecodeClaims(sess.Token)
	if err != nil {
		fmt.Println("not signed in")
		return nil
	}
	fmt.Printf("%s (%s)\n", claims.Email, claims.Role)
	return nil
}

func (cli *commandLine) coursesCmd(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("courses", flag.ExitOnError)
	query := fs.String("query", "", "Free-text search.")
	category := fs.String("category", "", "Category filter.")
	level := fs.String("level", "", "Level filter.")
	if err := fs.Parse(args); err != nil {
		return err
	}

	filter := course.SearchFilter{Query: *query, Category: *category, Level: *level}
	snap := <-cli.courses.SearchCatalog(ctx, filter)
	if snap.Err != "" {
		return errors.New(snap.Err)
	}
	for _, crs := range snap.Data {
		fmt.Printf("%-24s  %-40s  ₹%.0f  [%s/%s]\n",
			crs.ID, core.Ellipsis(crs.Title, 40), crs.Price, crs.Category, crs.Level)
	}
	fmt.Printf("%d course(s)\n", len(snap.Data))
	return nil
}

func (cli *commandLine) courseCmd(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("course", flag.ExitOnError)
	id := fs.String("id", "", "The course id.")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *id == "" {
		fs.Usage()
		return errHelp
	}
	if err := cli.guardTo(nav.RouteCourseDetail); err != nil {
		return err
	}

	crs, err := cli.courses.StudentDetail(ctx, *id)
	if err != nil {
		return err
	}
	fmt.Printf("%s — %s (₹%.0f)\n", crs.Title, crs.Instructor, crs.Price)
	for _, ch := range crs.Chapters {
		fmt.Printf("  %s\n", ch.Title)
		for _, tp := range ch.Topics {
			fmt.Printf("    - %s (%d quiz questions)\n", tp.Title, len(tp.Quiz))
		}
	}
	return nil
}

func (cli *commandLine) cartCmd(ctx context.Context) error {
	if err := cli.guardTo(nav.RouteCart); err != nil {
		return err
	}
	snap := <-cli.cart.Fetch(ctx)
	if snap.Err != "" {
		return errors.New(snap.Err)
	}
	var total float64
	for _, item := range snap.Data {
		fmt.Printf("%-24s  %-40s  ₹%.0f\n", item.ID, core.Ellipsis(item.Title, 40), item.Price)
		total += item.Price
	}
	fmt.Printf("total: ₹%.0f\n", total)
	return nil
}

func (cli *commandLine) cartEditCmd(ctx context.Context, cmd string, args []string) error {
	fs := flag.NewFlagSet(cmd, flag.ExitOnError)
	id := fs.String("id", "", "The course id.")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *id == "" {
		fs.Usage()
		return errHelp
	}
	if err := cli.guardTo(nav.RouteCart); err != nil {
		return err
	}

	if cmd == "cart-add" {
		item, err := cli.cart.Add(ctx, *id)
		if err != nil {
			return err
		}
		fmt.Printf("added %s\n", item.Title)
		return nil
	}
	if err := cli.cart.Remove(ctx, *id); err != nil {
		return err
	}
	fmt.Println("removed")
	return nil
}

// checkoutCmd performs the checkout sequence in program order: card check,
// cart read, enrollment update, navigation.
func (cli *commandLine) checkoutCmd(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("checkout", flag.ExitOnError)
	name := fs.String("name", "", "Card holder name.")
	number := fs.String("number", "", "Card number (12 digits).")
	expiry := fs.String("expiry", "", "Expiry, MM/YY.")
	cvv := fs.String("cvv", "", "CVV (3 digits).")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if err := cli.guardTo(nav.RouteCheckout); err != nil {
		return err
	}

	card := cart.CheckoutCard{HolderName: *name, Number: *number, Expiry: *expiry, CVV: *cvv}
	if err := card.Validate(cli.validate, cli.translator); err != nil {
		return err
	}

	snap := <-cli.cart.Fetch(ctx)
	if snap.Err != "" {
		return errors.New(snap.Err)
	}
	if len(snap.Data) == 0 {
		return errors.New("cart is empty")
	}
	if err := cli.cart.UpdateEnrolled(ctx); err != nil {
		return err
	}
	fmt.Printf("enrolled in %d course(s) → %s\n", len(snap.Data), nav.RouteStudentHome)
	return nil
}

func (cli *commandLine) quizCmd(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("quiz", flag.ExitOnError)
	courseID := fs.String("course", "", "The course id.")
	topicID := fs.String("topic", "", "The topic id.")
	answers := fs.String("answers", "", "Comma-separated answers, e.g. q1=0,q2=2.")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if err := cli.guardTo(nav.RouteQuiz); err != nil {
		return err
	}

	parsed, err := parseAnswers(*answers)
	if err != nil {
		return err
	}
	result, err := cli.students.SubmitQuiz(ctx, student.QuizSubmission{
		CourseID: *courseID,
		TopicID:  *topicID,
		Answers:  parsed,
	})
	if err != nil {
		return err
	}
	verdict := "failed"
	if result.Passed {
		verdict = "passed"
	}
	fmt.Printf("score %d/%d — %s\n", result.Score, result.Total, verdict)
	return nil
}

func (cli *commandLine) streakCmd(ctx context.Context) error {
	if err := cli.guardTo(nav.RouteStudentDashboard); err != nil {
		return err
	}
	streak, err := cli.students.Streak(ctx)
	if err != nil {
		return err
	}
	fmt.Printf("current streak: %d day(s), longest: %d\n", streak.Current, streak.Longest)
	return nil
}

func (cli *commandLine) dashboardCmd(ctx context.Context) error {
	if err := cli.guardTo(nav.RouteStudentDashboard); err != nil {
		return err
	}
	dash, err := cli.students.Dashboard(ctx)
	if err != nil {
		return err
	}
	fmt.Printf("enrolled: %d  completed topics: %d  hours: %.1f\n",
		dash.EnrolledCourses, dash.CompletedTopics, dash.HoursSpent)
	return nil
}

func (cli *commandLine) metricsCmd(ctx context.Context) error {
	if err := cli.guardTo(nav.RouteTeacherMetrics); err != nil {
		return err
	}
	metrics, err := cli.dashboards.TeacherMetrics(ctx)
	if err != nil {
		return err
	}
	fmt.Printf("courses: %d  students: %d  income: ₹%.0f\n",
		metrics.TotalCourses, metrics.TotalStudents, metrics.TotalIncome)
	return nil
}

func (cli *commandLine) overviewCmd(ctx context.Context) error {
	if err := cli.guardTo(nav.RouteAdminDashboard); err != nil {
		return err
	}
	overview, err := cli.dashboards.AdminOverview(ctx)
	if err != nil {
		return err
	}
	fmt.Printf("users: %d  courses: %d  pending: %d\n",
		overview.TotalUsers, overview.TotalCourses, overview.PendingCourses)
	return nil
}

func (cli *commandLine) assignmentsCmd(ctx context.Context) error {
	if err := cli.guardTo(nav.RouteAssignments); err != nil {
		return err
	}
	assignments, err := cli.assignments.List(ctx)
	if err != nil {
		return err
	}
	for _, asg := range assignments {
		fmt.Printf("%-24s  %-40s  due %s\n",
			asg.ID, core.Ellipsis(asg.Title, 40), asg.DueDate.Format("2006-01-02"))
	}
	return nil
}

func (cli *commandLine) assignmentSubmitCmd(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("assignment-submit", flag.ExitOnError)
	id := fs.String("id", "", "The assignment id.")
	content := fs.String("content", "", "The submission text.")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *id == "" || *content == "" {
		fs.Usage()
		return errHelp
	}
	if err := cli.guardTo(nav.RouteAssignments); err != nil {
		return err
	}

	sub, err := cli.assignments.Submit(ctx, *id, *content)
	if err != nil {
		return err
	}
	fmt.Printf("submitted %s\n", sub.ID)
	return nil
}

func (cli *commandLine) flashcardsCmd(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("flashcards", flag.ExitOnError)
	courseID := fs.String("course", "", "The course id.")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *courseID == "" {
		fs.Usage()
		return errHelp
	}
	if err := cli.guardTo(nav.RouteFlashcards); err != nil {
		return err
	}

	cards, err := cli.flashcards.List(ctx, *courseID)
	if err != nil {
		return err
	}
	for _, card := range cards {
		fmt.Printf("Q: %s\nA: %s\n\n", card.Front, card.Back)
	}
	return nil
}

func (cli *commandLine) contactCmd(args []string) error {
	fs := flag.NewFlagSet("contact", flag.ExitOnError)
	name := fs.String("name", "", "Your name.")
	email := fs.String("email", "", "Your email.")
	message := fs.String("message", "", "The message.")
	if err := fs.Parse(args); err != nil {
		return err
	}

	form := contactForm{Name: *name, Email: *email, Message: *message}
	if err := form.Validate(cli.validate, cli.translator); err != nil {
		return err
	}
	fmt.Println("thanks, we'll get back to you")
	return nil
}

func parseAnswers(raw string) (map[string]int, error) {
	if raw == "" {
		return nil, apps.NewArgumentError("no answers given")
	}
	answers := make(map[string]int)
	for _, pair := range strings.Split(raw, ",") {
		k, v, ok := strings.Cut(pair, "=")
		if !ok {
			return nil, apps.NewArgumentError(fmt.Sprintf("bad answer %q", pair))
		}
		choice, err := strconv.Atoi(v)
		if err != nil {
			return nil, apps.NewArgumentError(fmt.Sprintf("bad answer %q", pair))
		}
		answers[strings.TrimSpace(k)] = choice
	}
	return answers, nil
}
