package seed

import "newsbangla24/portal/internal/locale"

type demoUser struct {
	Name     string
	Email    string
	Password string
	Role     string
	Bio      string
}

var demoUsers = []demoUser{
	{Name: "Admin", Email: "admin@newsbangla24.com", Password: "admin123", Role: "admin", Bio: "Site administrator"},
	{Name: "Nusrat Jahan", Email: "editor@newsbangla24.com", Password: "editor123", Role: "editor", Bio: "News editor"},
	{Name: "Tanvir Ahmed", Email: "reporter@newsbangla24.com", Password: "reporter123", Role: "reporter", Bio: "Staff reporter, Dhaka"},
}

type demoCategory struct {
	Slug  string
	Name  locale.Localized
	Desc  locale.Localized
	Color string
}

var demoCategories = []demoCategory{
	{"national", locale.Localized{Bn: "জাতীয়", En: "National"}, locale.Localized{Bn: "দেশের খবর", En: "News from across Bangladesh"}, "#1f6f43"},
	{"politics", locale.Localized{Bn: "রাজনীতি", En: "Politics"}, locale.Localized{Bn: "রাজনীতির খবর", En: "Parliament, parties and policy"}, "#b3261e"},
	{"economy", locale.Localized{Bn: "অর্থনীতি", En: "Economy"}, locale.Localized{Bn: "অর্থনীতি ও বাণিজ্য", En: "Markets, trade and business"}, "#0b57d0"},
	{"international", locale.Localized{Bn: "আন্তর্জাতিক", En: "International"}, locale.Localized{Bn: "বিশ্বের খবর", En: "World news"}, "#6750a4"},
	{"sports", locale.Localized{Bn: "খেলা", En: "Sports"}, locale.Localized{Bn: "ক্রিকেট, ফুটবল ও অন্যান্য", En: "Cricket, football and more"}, "#e8710a"},
	{"entertainment", locale.Localized{Bn: "বিনোদন", En: "Entertainment"}, locale.Localized{Bn: "চলচ্চিত্র, সংগীত ও নাটক", En: "Film, music and drama"}, "#c2185b"},
	{"technology", locale.Localized{Bn: "প্রযুক্তি", En: "Technology"}, locale.Localized{Bn: "প্রযুক্তি ও বিজ্ঞান", En: "Technology and science"}, "#00796b"},
}

type demoTag struct {
	Slug string
	Name locale.Localized
}

var demoTags = []demoTag{
	{"flood", locale.Localized{Bn: "বন্যা", En: "Flood"}},
	{"cricket", locale.Localized{Bn: "ক্রিকেট", En: "Cricket"}},
	{"budget", locale.Localized{Bn: "বাজেট", En: "Budget"}},
	{"election", locale.Localized{Bn: "নির্বাচন", En: "Election"}},
	{"dhaka", locale.Localized{Bn: "ঢাকা", En: "Dhaka"}},
	{"startup", locale.Localized{Bn: "স্টার্টআপ", En: "Startup"}},
}

type demoArticle struct {
	Category string
	Tags     []string
	Title    locale.Localized
	Body     locale.Localized
	Status   string
	Featured bool
	Breaking bool
	// 发布时间距现在的小时数；定时稿件为未来的小时数
	AgeHours int
	Note     string
}

var demoArticles = []demoArticle{
	{
		Category: "national", Tags: []string{"flood"}, Status: "published", Featured: true, Breaking: true, AgeHours: 2,
		Title: locale.Localized{Bn: "সিলেটে বন্যা পরিস্থিতির অবনতি, পানিবন্দি লাখো মানুষ", En: "Flood worsens in Sylhet, hundreds of thousands stranded"},
		Body: locale.Localized{
			Bn: "<p>টানা বৃষ্টি ও উজানের ঢলে সিলেট ও সুনামগঞ্জের নিম্নাঞ্চল প্লাবিত হয়েছে।</p><p>জেলা প্রশাসন আশ্রয়কেন্দ্র খুলেছে এবং ত্রাণ বিতরণ শুরু হয়েছে।</p>",
			En: "<p>Continuous rain and upstream runoff have flooded low-lying areas of Sylhet and Sunamganj.</p><p>District officials have opened shelters and started distributing relief.</p>",
		},
	},
	{
		Category: "sports", Tags: []string{"cricket"}, Status: "published", Featured: true, AgeHours: 5,
		Title: locale.Localized{Bn: "মিরপুরে শেষ বলে জয় পেল বাংলাদেশ", En: "Bangladesh win off the last ball in Mirpur"},
		Body: locale.Localized{
			Bn: "<p>রোমাঞ্চকর ম্যাচে শেষ বলে চার মেরে দলকে জয় এনে দিলেন অধিনায়ক।</p>",
			En: "<p>The captain hit a boundary off the final delivery to seal a thrilling win.</p>",
		},
	},
	{
		Category: "economy", Tags: []string{"budget"}, Status: "published", AgeHours: 12,
		Title: locale.Localized{Bn: "নতুন বাজেটে শিক্ষা খাতে বরাদ্দ বাড়ছে", En: "New budget raises allocation for education"},
		Body: locale.Localized{
			Bn: "<p>অর্থমন্ত্রী জাতীয় সংসদে প্রস্তাবিত বাজেট উপস্থাপন করেছেন।</p><p>শিক্ষা ও স্বাস্থ্য খাতে বরাদ্দ আগের বছরের চেয়ে বেশি।</p>",
			En: "<p>The finance minister presented the proposed budget in parliament.</p><p>Education and health receive larger allocations than last year.</p>",
		},
	},
	{
		Category: "politics", Tags: []string{"election"}, Status: "published", Breaking: true, AgeHours: 20,
		Title: locale.Localized{Bn: "স্থানীয় সরকার নির্বাচনের তফসিল ঘোষণা", En: "Schedule announced for local government elections"},
		Body: locale.Localized{
			Bn: "<p>নির্বাচন কমিশন আজ স্থানীয় সরকার নির্বাচনের তফসিল ঘোষণা করেছে।</p>",
			En: "<p>The Election Commission announced the schedule for local government polls today.</p>",
		},
	},
	{
		Category: "technology", Tags: []string{"startup", "dhaka"}, Status: "published", AgeHours: 30,
		Title: locale.Localized{Bn: "ঢাকার স্টার্টআপে বিদেশি বিনিয়োগ", En: "Dhaka startup secures foreign investment"},
		Body: locale.Localized{
			Bn: "<p>একটি লজিস্টিক স্টার্টআপ সিরিজ-এ রাউন্ডে বিনিয়োগ পেয়েছে।</p>",
			En: "<p>A logistics startup has closed a Series A funding round.</p>",
		},
	},
	{
		Category: "international", Status: "published", AgeHours: 40,
		Title: locale.Localized{Bn: "জলবায়ু সম্মেলনে ক্ষতিপূরণ তহবিলের দাবি", En: "Climate summit hears calls for loss and damage fund"},
		Body: locale.Localized{
			Bn: "<p>ঝুঁকিপূর্ণ দেশগুলো দ্রুত তহবিল ছাড়ের দাবি জানিয়েছে।</p>",
			En: "<p>Vulnerable nations urged faster release of climate funds.</p>",
		},
	},
	{
		Category: "entertainment", Status: "published", AgeHours: 50,
		Title: locale.Localized{Bn: "আন্তর্জাতিক উৎসবে পুরস্কৃত বাংলা চলচ্চিত্র", En: "Bangla film wins award at international festival"},
		Body: locale.Localized{
			Bn: "<p>নবীন নির্মাতার প্রথম চলচ্চিত্র সেরা পরিচালকের পুরস্কার জিতেছে।</p>",
			En: "<p>A debut feature won the best director award.</p>",
		},
	},
	{
		Category: "national", Tags: []string{"dhaka"}, Status: "published", AgeHours: 72,
		Title: locale.Localized{Bn: "মেট্রোরেলের নতুন স্টেশন চালু", En: "New metro rail station opens"},
		Body: locale.Localized{
			Bn: "<p>যাত্রীদের সুবিধায় আরও একটি মেট্রো স্টেশন চালু হয়েছে।</p>",
			En: "<p>Another metro station has opened to passengers.</p>",
		},
	},
	{
		Category: "economy", Tags: []string{"budget"}, Status: "pending",
		Title: locale.Localized{Bn: "রপ্তানি আয়ে ঊর্ধ্বগতি", En: "Export earnings on the rise"},
		Body: locale.Localized{
			Bn: "<p>তৈরি পোশাক খাতে রপ্তানি আয় বেড়েছে।</p>",
			En: "<p>Garment exports have grown this quarter.</p>",
		},
	},
	{
		Category: "sports", Tags: []string{"cricket"}, Status: "draft",
		Title: locale.Localized{Bn: "বিশ্বকাপের দল ঘোষণা আসছে", En: "World Cup squad announcement coming"},
		Body: locale.Localized{
			Bn: "<p>নির্বাচকরা চূড়ান্ত দল নিয়ে আলোচনা করছেন।</p>",
		},
	},
	{
		Category: "politics", Status: "rejected", Note: "Please add a second source for the quotes.",
		Title: locale.Localized{Bn: "সংসদে উত্তপ্ত বিতর্ক", En: "Heated debate in parliament"},
		Body: locale.Localized{
			Bn: "<p>বিরোধী দলের ওয়াকআউট।</p>",
			En: "<p>The opposition staged a walkout.</p>",
		},
	},
	{
		Category: "technology", Tags: []string{"startup"}, Status: "scheduled", AgeHours: -24,
		Title: locale.Localized{Bn: "দেশে ফাইভ-জি পরীক্ষামূলক চালু", En: "5G trial launches nationwide"},
		Body: locale.Localized{
			Bn: "<p>মোবাইল অপারেটররা পরীক্ষামূলক ফাইভ-জি সেবা চালু করছে।</p>",
			En: "<p>Mobile operators are launching trial 5G services.</p>",
		},
	},
}

type demoComment struct {
	Article int // demoArticles 下标
	Name    string
	Email   string
	Content string
	Status  string
	ReplyTo int // 同一篇文章中 demoComments 的下标，-1 表示顶级
}

var demoComments = []demoComment{
	{0, "Rahim Uddin", "rahim@example.com", "আমাদের এলাকায় এখনো ত্রাণ পৌঁছায়নি।", "approved", -1},
	{0, "Salma Begum", "salma@example.com", "Thank you for the timely report.", "approved", -1},
	{0, "Karim", "", "একই অবস্থা আমাদের গ্রামেও।", "approved", 0},
	{0, "spam-bot", "promo@spam.test", "Cheap loans, click here", "spam", -1},
	{1, "Arif", "arif@example.com", "অসাধারণ ম্যাচ!", "approved", -1},
	{1, "Mitu", "", "Best finish this year.", "pending", -1},
	{2, "Hasan", "hasan@example.com", "বাজেটে কৃষি খাত কোথায়?", "pending", -1},
	{3, "Nila", "", "Hope the elections are fair.", "rejected", -1},
}
