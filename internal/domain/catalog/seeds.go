package catalog

// savingsMethods are the everyday saving ideas offered while building the emergency fund.
var savingsMethods = []seed{
	{"hysa", "Open a High-Yield Savings Account (HYSA) for better interest."},
	{"roundUpApp", "Use a \"round-up\" app (e.g., Acorns, Chime) for spare change savings."},
	{"rakuten", "Use cash-back apps like Rakuten for online shopping savings."},
	{"couponApps", "Utilize coupon apps (e.g., Ibotta, Fetch Rewards) for grocery savings."},
	{"gasApps", "Find cheaper gas prices using apps (e.g., GasBuddy) to save on fuel."},
	{"directDepositSplit", "Split your direct deposit to automatically send a portion to savings/investments."},
	{"payYourselfFirst", "Automatically transfer a set amount to savings on payday (Pay Yourself First)."},
	{"mealPlanning", "Plan meals weekly to reduce food waste and impulse grocery buys."},
	{"cancelSubscriptions", "Review and cancel unused subscriptions."},
	{"publicTransport", "Use public transportation or carpool to save on commuting costs."},
	{"energyAudit", "Conduct an energy audit at home to find ways to lower utility bills."},
	{"negotiateBills", "Negotiate lower rates for internet, cable, or insurance bills."},
	{"diyInstead", "Do small repairs or projects yourself instead of hiring help."},
	{"coffeeAtHome", "Make coffee at home instead of buying it daily."},
	{"packedLunches", "Pack lunches for work/school to avoid eating out."},
	{"bulkBuying", "Buy non-perishable items in bulk when on sale."},
	{"libraryUse", "Borrow books, movies, and games from the library instead of buying."},
	{"sellUnusedItems", "Sell unused clothing, electronics, or household items."},
	{"priceCompare", "Always compare prices online before making a significant purchase."},
	{"repurposeItems", "Find new uses for old items instead of buying new ones."},
	{"waterBottle", "Carry a reusable water bottle instead of buying bottled water."},
	{"loyaltyPrograms", "Join loyalty programs for stores you frequent."},
	{"delayPurchases", "Implement a 30-day rule for non-essential purchases."},
	{"digitalCoupons", "Use digital coupons and store loyalty apps for discounts."},
	{"avoidATMFees", "Avoid ATM fees by using your bank's network or getting cash back."},
	{"lowerPhoneBill", "Switch to a cheaper phone plan or negotiate current rates."},
	{"homeCooking", "Cook more at home instead of relying on takeout or restaurants."},
	{"smartThermostat", "Install a smart thermostat to optimize energy usage."},
	{"gardening", "Grow some of your own fruits and vegetables."},
	{"usedItems", "Buy quality used items (clothes, furniture) instead of new."},
}

// automationStrategies are the ways to put saving and giving on autopilot.
var automationStrategies = []seed{
	{"autoTransfer", "Set up automatic transfers from checking to savings/investments."},
	{"directDepositSplit", "Split your direct deposit to send a portion directly to savings/investments."},
	{"retirementAuto", "Automate contributions to your 401k/403b (employer-sponsored retirement)."},
	{"iraAuto", "Set up recurring automatic contributions to an Individual Retirement Account (IRA)."},
	{"hsaAuto", "Automate contributions to a Health Savings Account (HSA)."},
	{"529Auto", "Set up automatic deposits into a 529 college savings plan."},
	{"investmentAuto", "Schedule recurring investments into a brokerage account."},
	{"roundUpAppAuto", "Use a \"round-up\" app (e.g., Acorns, Chime) to automatically save spare change."},
	{"billPayAuto", "Automate bill payments from a dedicated account, transferring funds into it."},
	{"rolloverBudget", "Automatically roll over unspent budget money to savings at month-end."},
	{"loanExtraPaymentsAuto", "Automate extra payments on a mortgage, student loan, or other debt."},
	{"vacationFundAuto", "Set up recurring transfers to a dedicated vacation savings fund."},
	{"holidayFundAuto", "Automate savings for holiday spending throughout the year."},
	{"emergencyFundAuto", "Set up consistent automatic transfers to your emergency fund."},
	{"taxRefundSplitAuto", "Directly deposit a portion of your tax refund into a savings account."},
	{"bonusSavingsAuto", "Automatically save a percentage of any work bonuses or unexpected income."},
	{"recurringDonationAuto", "Automate regular donations or tithes to charity/church."},
	{"kidsCollegeFundAuto", "Automate contributions to children's college savings (e.g., UGMA/UTMA)."},
	{"sinkingFundAuto", "Set up automatic transfers to sinking funds for large upcoming expenses (e.g., car repair, new appliance)."},
	{"dividendReinvestmentAuto", "Automate dividend reinvestment in your investment accounts."},
	{"creditCardAutoPayFull", "Set up credit card to auto-pay statement balance in full each month."},
	{"subscriptionReminderAuto", "Use apps that track subscriptions and remind you before renewal to review/cancel."},
	{"debtSnowballAuto", "Automate extra payments on the smallest debt in a debt snowball plan."},
	{"debtAvalancheAuto", "Automate extra payments on the highest interest debt in a debt avalanche plan."},
	{"financialPlannerAuto", "Work with a financial planner who can set up automated investment strategies."},
	{"healthInsuranceSavingsAuto", "Automate contributions to a Flexible Spending Account (FSA) or similar."},
	{"rentalPropertySavingsAuto", "Automatically transfer a portion of rental income to a maintenance fund."},
	{"selfEmploymentTaxAuto", "Automate transfers for self-employment taxes to a separate account."},
	{"futureGoalsAuto", "Set up dedicated automatic transfers for specific future goals (e.g., down payment, new car)."},
	{"yearlyReviewAuto", "Schedule an annual calendar reminder for a comprehensive financial automation review."},
}

// prayers holds the daily prayer text, one per calendar day starting at day 1.
var prayers = []string{
	"Lord, grant me clarity to see my financial reality and make wise decisions. (Face Your Numbers)",
	"Heavenly Father, show me where I can increase my income to better serve your purpose. (Pray for Increase)",
	"God, help me to identify and eliminate noise in my spending, so I can focus on what truly matters. (Cut Noise, Not Life)",
	"I pray for discipline to automate my obedience in saving and giving. (Automate Your Obedience)",
	"Grant me wisdom, Lord, to build my emergency fund, creating an ark of security for my family. (Emergency Fund)",
	"Father, bless my efforts to diligently track my finances, as your word instructs. (Face Your Numbers)",
	"May opportunities for income growth multiply, aligning with your divine will. (Pray for Increase)",
	"Help me, God, to discern between needs and wants, cutting expenses that don't serve my life. (Cut Noise, Not Life)",
	"I commit to consistent saving, Lord, trusting your provision as I automate my financial habits. (Automate Your Obedience)",
	"Strengthen my resolve to grow my emergency fund, a testament to my trust in your future provision. (Emergency Fund)",
	"Lord, open my eyes to every detail of my financial state, that I may be a good steward. (Face Your Numbers)",
	"I pray for creative ideas and divine connections that lead to increased prosperity. (Pray for Increase)",
	"Guide me, Spirit, to live a life free from unnecessary distractions and wasteful spending. (Cut Noise, Not Life)",
	"Thank you, Lord, for the power of automation in bringing order and consistency to my finances. (Automate Your Obedience)",
	"Protect and grow my emergency fund, Lord, making it a reliable source in times of need. (Emergency Fund)",
	"Give me courage, Father, to confront my financial numbers with honesty and a plan. (Face Your Numbers)",
	"I ask for your blessing, Lord, upon my work and ventures, that they may yield abundant increase. (Pray for Increase)",
	"Help me to declutter my financial life, removing anything that hinders my progress. (Cut Noise, Not Life)",
	"I declare peace over my finances as I intentionally automate my savings and giving. (Automate Your Obedience)",
	"May my emergency fund reflect your faithfulness and my commitment to financial prudence. (Emergency Fund)",
	"Lord, grant me foresight and understanding to plan my finances with precision. (Face Your Numbers)",
	"Ignite within me the passion and drive to pursue new avenues of income and growth. (Pray for Increase)",
	"Thank you, God, for showing me how to live abundantly by cutting what is superfluous. (Cut Noise, Not Life)",
	"I rejoice in the ease and effectiveness of automated financial habits, a gift from your wisdom. (Automate Your Obedience)",
	"Let my emergency fund be a testimony of your peace that transcends all understanding. (Emergency Fund)",
	"Father, reveal any hidden financial burdens and empower me to address them. (Face Your Numbers)",
	"I pray for open doors and divine favor in my career and business for supernatural increase. (Pray for Increase)",
	"Help me, Lord, to continually evaluate my spending, ensuring every dollar is aligned with my values. (Cut Noise, Not Life)",
	"With every automated transfer, I sow seeds of financial freedom and future blessing. (Automate Your Obedience)",
	"Thank you, God, for the complete security and peace that comes from a fully funded emergency fund. (Emergency Fund)",
}
