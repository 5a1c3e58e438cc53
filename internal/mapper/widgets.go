package mapper

// widget is the target class of a component type per mode, plus attributes
// the type implies.
type widget struct {
	views    string
	compose  string
	implicit []Attribute
}

var widgets = map[string]widget{
	"View":           {views: "androidx.constraintlayout.widget.ConstraintLayout", compose: "ConstraintLayout"},
	"ConstraintView": {views: "androidx.constraintlayout.widget.ConstraintLayout", compose: "ConstraintLayout"},
	"VStack":         {views: "LinearLayout", compose: "Column", implicit: []Attribute{android("orientation", "vertical")}},
	"HStack":         {views: "LinearLayout", compose: "Row", implicit: []Attribute{android("orientation", "horizontal")}},
	"ZStack":         {views: "FrameLayout", compose: "Box"},
	"Relative":       {views: "RelativeLayout", compose: "Box"},
	"ScrollView":     {views: "ScrollView", compose: "Column"},
	"List":           {views: "androidx.recyclerview.widget.RecyclerView", compose: "LazyColumn"},
	"Collection":     {views: "androidx.recyclerview.widget.RecyclerView", compose: "LazyVerticalGrid"},
	"Label":          {views: "TextView", compose: "Text"},
	"Button":         {views: "com.google.android.material.button.MaterialButton", compose: "Button"},
	"Image":          {views: "ImageView", compose: "Image"},
	"TextField":      {views: "EditText", compose: "TextField"},
	"Switch":         {views: "androidx.appcompat.widget.SwitchCompat", compose: "Switch"},
	"Checkbox":       {views: "CheckBox", compose: "Checkbox"},
	"ProgressBar":    {views: "ProgressBar", compose: "CircularProgressIndicator"},
	"Spacer":         {views: "Space", compose: "Spacer"},
}

// widgetFor returns the target class of typ. Unknown types map to
// themselves, so custom views pass through.
func widgetFor(typ string, mode Mode) (string, []Attribute) {
	w, ok := widgets[typ]
	if !ok {
		return typ, nil
	}

	if mode == ModeCompose {
		return w.compose, w.implicit
	}

	return w.views, w.implicit
}
